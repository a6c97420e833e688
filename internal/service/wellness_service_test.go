package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"steady-compass/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

func fixedNow() time.Time {
	return time.Unix(1700000000, 0).UTC()
}

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

type stubCheckInRepo struct {
	inserted []domain.CheckIn
	listed   []domain.CheckIn
	filter   domain.CheckInFilter
	err      error
}

func (s *stubCheckInRepo) InsertCheckIn(ctx context.Context, checkIn domain.CheckIn) (domain.CheckIn, error) {
	if s.err != nil {
		return domain.CheckIn{}, s.err
	}
	checkIn.ID = int64(len(s.inserted) + 1)
	s.inserted = append(s.inserted, checkIn)
	return checkIn, nil
}

func (s *stubCheckInRepo) InsertCheckIns(ctx context.Context, checkIns []domain.CheckIn) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, checkIns...)
	return nil
}

func (s *stubCheckInRepo) ListCheckIns(ctx context.Context, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.filter = filter
	return s.listed, nil
}

func newTestService(t *testing.T, repo CheckInRepository) (*WellnessService, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewWellnessService(testTracer(), repo, client, time.Minute, 7, fixedNow), client
}

func TestRecordCheckInAttachesAnalysis(t *testing.T) {
	repo := &stubCheckInRepo{}
	svc, _ := newTestService(t, repo)

	stored, err := svc.RecordCheckIn(context.Background(), "u1", "明天要交项目周报", time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != 1 {
		t.Fatalf("expected assigned id, got %d", stored.ID)
	}
	if stored.StressLevel != domain.StressHigh || stored.StressScore != 0.9 {
		t.Fatalf("unexpected stress analysis: %s/%f", stored.StressLevel, stored.StressScore)
	}
	if stored.Dimension != domain.DimensionWork {
		t.Fatalf("expected work dimension, got %s", stored.Dimension)
	}
	if !stored.OccurredAt.Equal(fixedNow()) {
		t.Fatalf("expected injected clock timestamp, got %s", stored.OccurredAt)
	}
}

func TestRecordCheckInValidatesInput(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})

	if _, err := svc.RecordCheckIn(context.Background(), "", "text", time.Time{}); err == nil {
		t.Fatal("expected error for missing user id")
	}
	if _, err := svc.RecordCheckIn(context.Background(), "u1", "   ", time.Time{}); err == nil {
		t.Fatal("expected error for blank description")
	}
}

func TestRecordCheckInWrapsRepositoryError(t *testing.T) {
	repo := &stubCheckInRepo{err: fmt.Errorf("boom")}
	svc, _ := newTestService(t, repo)

	if _, err := svc.RecordCheckIn(context.Background(), "u1", "开会", time.Time{}); err == nil {
		t.Fatal("expected error from repository")
	}
}

func TestImportCheckInsAnalyzesEachEntry(t *testing.T) {
	repo := &stubCheckInRepo{}
	svc, client := newTestService(t, repo)

	if _, err := svc.RecentScore(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	imported, err := svc.ImportCheckIns(context.Background(), "u1", []domain.EventRecord{
		{Description: "最后期限快到了"},
		{Description: "晚上散步", Timestamp: fixedNow().Add(-time.Hour)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 2 || len(repo.inserted) != 2 {
		t.Fatalf("expected 2 imported entries, got %d/%d", imported, len(repo.inserted))
	}
	if repo.inserted[0].StressLevel != domain.StressHigh || repo.inserted[0].StressScore != 0.9 {
		t.Fatalf("unexpected analysis on first entry: %s/%f", repo.inserted[0].StressLevel, repo.inserted[0].StressScore)
	}
	if !repo.inserted[0].OccurredAt.Equal(fixedNow()) {
		t.Fatalf("expected injected clock for missing timestamp, got %s", repo.inserted[0].OccurredAt)
	}
	if !repo.inserted[1].OccurredAt.Equal(fixedNow().Add(-time.Hour)) {
		t.Fatalf("expected supplied timestamp to survive, got %s", repo.inserted[1].OccurredAt)
	}
	if exists := client.Exists(context.Background(), "resilience:score:u1").Val(); exists != 0 {
		t.Fatal("expected cached score to be invalidated by the import")
	}
}

func TestImportCheckInsValidatesInput(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})
	entries := []domain.EventRecord{{Description: "开会"}}

	if _, err := svc.ImportCheckIns(context.Background(), "", entries); err == nil {
		t.Fatal("expected error for missing user id")
	}
	if _, err := svc.ImportCheckIns(context.Background(), "u1", nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
	if _, err := svc.ImportCheckIns(context.Background(), "u1", []domain.EventRecord{{Description: "   "}}); err == nil {
		t.Fatal("expected error for blank description")
	}
}

func TestRecentCurveUsesJournalWindow(t *testing.T) {
	repo := &stubCheckInRepo{listed: []domain.CheckIn{
		{UserID: "u1", Description: "开会", OccurredAt: fixedNow().Add(-time.Hour), StressLevel: domain.StressMedium, StressScore: 0.6},
		{UserID: "u1", Description: "散步", OccurredAt: fixedNow().Add(-2 * time.Hour), StressLevel: domain.StressLow, StressScore: 0.3},
	}}
	svc, _ := newTestService(t, repo)

	curve, err := svc.RecentCurve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(curve.DataPoints) != 2 {
		t.Fatalf("expected 2 data points, got %d", len(curve.DataPoints))
	}
	wantSince := fixedNow().AddDate(0, 0, -7)
	if !repo.filter.Since.Equal(wantSince) {
		t.Fatalf("expected since %s, got %s", wantSince, repo.filter.Since)
	}
	// Journal rows arrive newest first; the curve must re-sort ascending.
	if curve.DataPoints[0].EventDescription != "散步" {
		t.Fatalf("expected oldest event first, got %s", curve.DataPoints[0].EventDescription)
	}
}

func TestRecentScoreCachesResult(t *testing.T) {
	repo := &stubCheckInRepo{listed: []domain.CheckIn{
		{UserID: "u1", Description: "散步", OccurredAt: fixedNow(), StressLevel: domain.StressLow, StressScore: 0.2},
	}}
	svc, client := newTestService(t, repo)

	first, err := svc.RecentScore(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists := client.Exists(context.Background(), "resilience:score:u1").Val(); exists != 1 {
		t.Fatal("expected score to be cached")
	}

	// A second read must come from the cache, not the journal.
	repo.listed = nil
	second, err := svc.RecentScore(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.OverallScore != first.OverallScore || second.Level != first.Level {
		t.Fatalf("expected cached score, got %+v vs %+v", second, first)
	}
}

func TestRecordCheckInInvalidatesScoreCache(t *testing.T) {
	repo := &stubCheckInRepo{}
	svc, client := newTestService(t, repo)

	if _, err := svc.RecentScore(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists := client.Exists(context.Background(), "resilience:score:u1").Val(); exists != 1 {
		t.Fatal("expected score to be cached")
	}

	if _, err := svc.RecordCheckIn(context.Background(), "u1", "明天开会", time.Time{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists := client.Exists(context.Background(), "resilience:score:u1").Val(); exists != 0 {
		t.Fatal("expected cache entry to be invalidated")
	}
}

func TestRecentScoreWithoutCacheClient(t *testing.T) {
	repo := &stubCheckInRepo{}
	svc := NewWellnessService(testTracer(), repo, nil, 0, 0, fixedNow)

	score, err := svc.RecentScore(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.OverallScore != 100 || score.Level != domain.ResilienceExcellent {
		t.Fatalf("unexpected empty-journal score: %+v", score)
	}
}

func TestSuggestForEventClassifiesFirst(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})

	items := svc.SuggestForEvent(context.Background(), "明天要交项目周报")
	if len(items) == 0 {
		t.Fatal("expected suggestions for a high-stress event")
	}
	// High tier leads with relaxation when no dimension or emotion is known.
	if items[0].Category != "Relaxation Techniques" {
		t.Fatalf("unexpected leading category: %s", items[0].Category)
	}
}

func TestGenerateCurveClassifiesUnscoredBatch(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})

	curve := svc.GenerateCurve(context.Background(), []domain.EventRecord{
		{Description: "最后期限快到了"},
		{Description: "晚上散步"},
	})
	if len(curve.DataPoints) != 2 {
		t.Fatalf("expected 2 data points, got %d", len(curve.DataPoints))
	}
	// No event carried a stress level, so sentiment analysis fills them in.
	if curve.DataPoints[0].StressLevel != domain.StressHigh || curve.DataPoints[0].StressScore != 0.9 {
		t.Fatalf("expected classified high/0.9, got %s/%f", curve.DataPoints[0].StressLevel, curve.DataPoints[0].StressScore)
	}
	if curve.DataPoints[1].StressLevel != domain.StressLow || curve.DataPoints[1].StressScore != 0.3 {
		t.Fatalf("expected classified low/0.3, got %s/%f", curve.DataPoints[1].StressLevel, curve.DataPoints[1].StressScore)
	}
}

func TestCalculateScoreRetagsAutoClassifiedDimensions(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})

	score := svc.CalculateScore(context.Background(), []domain.EventRecord{
		{Description: "最后期限快到了", Dimension: domain.DimensionWork},
		{Description: "晚上散步"},
	})
	// Auto-classification discards caller dimension tags along with the
	// missing stress fields, so everything groups under other.
	if len(score.DimensionScores) != 1 {
		t.Fatalf("expected a single dimension group, got %v", score.DimensionScores)
	}
	if _, ok := score.DimensionScores[domain.DimensionOther]; !ok {
		t.Fatalf("expected auto-classified events under other, got %v", score.DimensionScores)
	}
}

func TestGenerateCurveReportBundlesSummary(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})
	score := 0.6

	curve, summary := svc.GenerateCurveReport(context.Background(), []domain.EventRecord{
		{Description: "开会", StressLevel: domain.StressMedium, StressScore: &score},
	})
	if len(curve.DataPoints) != 1 {
		t.Fatalf("expected 1 data point, got %d", len(curve.DataPoints))
	}
	if summary.TotalDataPoints != 1 || summary.Status == "" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.AverageStress != curve.AverageStress {
		t.Fatalf("summary average %f does not match curve %f", summary.AverageStress, curve.AverageStress)
	}
}

func TestGenerateCurveKeepsPreScoredBatch(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})
	score := 0.6

	curve := svc.GenerateCurve(context.Background(), []domain.EventRecord{
		{Description: "开会", StressLevel: domain.StressMedium, StressScore: &score},
		{Description: "最后期限快到了"},
	})
	// One pre-scored event disables classification for the whole batch; the
	// unscored event falls back to the low/0.3 defaults.
	if curve.DataPoints[1].StressLevel != domain.StressLow || curve.DataPoints[1].StressScore != 0.3 {
		t.Fatalf("expected default low/0.3, got %s/%f", curve.DataPoints[1].StressLevel, curve.DataPoints[1].StressScore)
	}
}

func TestEngineDelegation(t *testing.T) {
	svc, _ := newTestService(t, &stubCheckInRepo{})
	ctx := context.Background()

	if got := svc.AnalyzeEmotion(ctx, "今天很开心").EmotionType; got != domain.EmotionJoy {
		t.Fatalf("expected joy, got %s", got)
	}
	if got := svc.ClassifyStress(ctx, "明天下午3点开会").Level; got != domain.StressMedium {
		t.Fatalf("expected medium, got %s", got)
	}
	if got := svc.AnalyzeEvent(ctx, "晚上散步").StressScore; got != 0.3 {
		t.Fatalf("expected score 0.3, got %f", got)
	}
	if got := len(svc.BatchAnalyzeEmotions(ctx, []string{"a", "b"})); got != 2 {
		t.Fatalf("expected 2 results, got %d", got)
	}
	if got := svc.CurveSummary(ctx, nil).Status; got == "" {
		t.Fatal("expected a status line")
	}
	if got := svc.GetActionPlan(ctx, string(domain.StressLow), "", "").TotalCount; got != 6 {
		t.Fatalf("expected 6 plan items, got %d", got)
	}
	if got := len(svc.GetSuggestions(ctx, string(domain.StressHigh), "", "")); got != 9 {
		t.Fatalf("expected 9 suggestions, got %d", got)
	}
}
