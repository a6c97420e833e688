package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"steady-compass/internal/analysis"
	"steady-compass/internal/curve"
	"steady-compass/internal/domain"
	"steady-compass/internal/resilience"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultJournalWindowDays = 7
	defaultScoreCacheTTL     = 5 * time.Minute
)

type CheckInRepository interface {
	InsertCheckIn(ctx context.Context, checkIn domain.CheckIn) (domain.CheckIn, error)
	InsertCheckIns(ctx context.Context, checkIns []domain.CheckIn) error
	ListCheckIns(ctx context.Context, filter domain.CheckInFilter) ([]domain.CheckIn, error)
}

// WellnessService fronts the analysis engines and the check-in journal. The
// engines themselves are stateless; only the journal and the score cache
// touch external systems.
type WellnessService struct {
	tracer     trace.Tracer
	checkIns   CheckInRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	windowDays int
	now        func() time.Time

	emotions   *analysis.EmotionAnalyzer
	classifier *analysis.StressEventClassifier
	sentiments *analysis.EventSentimentAnalyzer
	curves     *curve.Generator
	scorer     *resilience.Scorer
	advisor    *resilience.Advisor
}

func NewWellnessService(
	tracer trace.Tracer,
	checkIns CheckInRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	windowDays int,
	now func() time.Time,
) *WellnessService {
	if now == nil {
		now = time.Now
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultScoreCacheTTL
	}
	if windowDays <= 0 {
		windowDays = defaultJournalWindowDays
	}

	emotions := analysis.NewEmotionAnalyzer(now)
	classifier := analysis.NewStressEventClassifier()
	curves := curve.NewGenerator(emotions, now)

	return &WellnessService{
		tracer:     tracer,
		checkIns:   checkIns,
		cache:      cache,
		cacheTTL:   cacheTTL,
		windowDays: windowDays,
		now:        now,
		emotions:   emotions,
		classifier: classifier,
		sentiments: analysis.NewEventSentimentAnalyzer(classifier),
		curves:     curves,
		scorer:     resilience.NewScorer(curves, now),
		advisor:    resilience.NewAdvisor(),
	}
}

func (s *WellnessService) AnalyzeEmotion(ctx context.Context, text string) domain.EmotionAnalysis {
	_, span := s.tracer.Start(ctx, "wellness-service.analyze-emotion")
	defer span.End()

	return s.emotions.Analyze(text)
}

func (s *WellnessService) BatchAnalyzeEmotions(ctx context.Context, texts []string) []domain.EmotionAnalysis {
	_, span := s.tracer.Start(ctx, "wellness-service.batch-analyze-emotions")
	defer span.End()

	return s.emotions.BatchAnalyze(texts)
}

func (s *WellnessService) ClassifyStress(ctx context.Context, text string) domain.StressDetails {
	_, span := s.tracer.Start(ctx, "wellness-service.classify-stress")
	defer span.End()

	return s.classifier.ClassifyWithDetails(text)
}

func (s *WellnessService) AnalyzeEvent(ctx context.Context, text string) domain.EventSentiment {
	_, span := s.tracer.Start(ctx, "wellness-service.analyze-event")
	defer span.End()

	return s.sentiments.Analyze(text)
}

func (s *WellnessService) GenerateCurve(ctx context.Context, events []domain.EventRecord) domain.PressureCurve {
	_, span := s.tracer.Start(ctx, "wellness-service.generate-curve")
	defer span.End()

	return s.curves.GenerateFromEvents(s.classifyIfUnscored(events))
}

// GenerateCurveReport builds the curve and its summary from one generation
// pass over the events.
func (s *WellnessService) GenerateCurveReport(ctx context.Context, events []domain.EventRecord) (domain.PressureCurve, domain.CurveSummary) {
	_, span := s.tracer.Start(ctx, "wellness-service.generate-curve-report")
	defer span.End()

	c := s.curves.GenerateFromEvents(s.classifyIfUnscored(events))
	return c, s.curves.Summary(c)
}

func (s *WellnessService) CurveSummary(ctx context.Context, events []domain.EventRecord) domain.CurveSummary {
	_, span := s.tracer.Start(ctx, "wellness-service.curve-summary")
	defer span.End()

	return s.curves.Summary(s.curves.GenerateFromEvents(s.classifyIfUnscored(events)))
}

func (s *WellnessService) CalculateScore(ctx context.Context, events []domain.EventRecord) domain.ResilienceScore {
	_, span := s.tracer.Start(ctx, "wellness-service.calculate-score")
	defer span.End()

	return s.scorer.CalculateScore(s.classifyIfUnscored(events))
}

// classifyIfUnscored fills stress levels and scores from sentiment analysis
// when no event in the batch carries a stress level, retagging every event
// with the other dimension. A single pre-scored event leaves the whole batch
// untouched.
func (s *WellnessService) classifyIfUnscored(events []domain.EventRecord) []domain.EventRecord {
	for _, event := range events {
		if event.StressLevel.IsValid() {
			return events
		}
	}

	classified := make([]domain.EventRecord, len(events))
	for i, event := range events {
		sentiment := s.sentiments.Analyze(event.Description)
		score := sentiment.StressScore
		event.StressLevel = sentiment.StressLevel
		event.StressScore = &score
		event.Dimension = domain.DimensionOther
		classified[i] = event
	}
	return classified
}

func (s *WellnessService) GetSuggestions(ctx context.Context, stressLevel, dimension, emotionType string) []domain.SuggestionItem {
	_, span := s.tracer.Start(ctx, "wellness-service.get-suggestions")
	defer span.End()

	return s.advisor.GetSuggestions(stressLevel, dimension, emotionType)
}

func (s *WellnessService) GetActionPlan(ctx context.Context, stressLevel, dimension, emotionType string) domain.ActionPlan {
	_, span := s.tracer.Start(ctx, "wellness-service.get-action-plan")
	defer span.End()

	return s.advisor.GetActionPlan(stressLevel, dimension, emotionType)
}

// SuggestForEvent classifies the event text first, then advises on the
// resulting tier. The classifier produces no dimension, so the lookup always
// sees "other".
func (s *WellnessService) SuggestForEvent(ctx context.Context, description string) []domain.SuggestionItem {
	_, span := s.tracer.Start(ctx, "wellness-service.suggest-for-event")
	defer span.End()

	level := s.classifier.Classify(description)
	return s.advisor.GetSuggestions(string(level), domain.DimensionOther, "")
}

func (s *WellnessService) RecordCheckIn(ctx context.Context, userID, description string, occurredAt time.Time) (domain.CheckIn, error) {
	ctx, span := s.tracer.Start(ctx, "wellness-service.record-check-in")
	defer span.End()

	if s.checkIns == nil {
		return domain.CheckIn{}, fmt.Errorf("check-in journal is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.CheckIn{}, fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(description) == "" {
		return domain.CheckIn{}, fmt.Errorf("description is required")
	}
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	sentiment := s.sentiments.Analyze(description)
	emotion := s.emotions.Analyze(description)

	stored, err := s.checkIns.InsertCheckIn(ctx, domain.CheckIn{
		UserID:      userID,
		Description: description,
		OccurredAt:  occurredAt.UTC(),
		StressLevel: sentiment.StressLevel,
		StressScore: sentiment.StressScore,
		Dimension:   emotion.Dimension,
		EmotionType: emotion.EmotionType,
	})
	if err != nil {
		return domain.CheckIn{}, fmt.Errorf("insert check-in: %w", err)
	}

	s.invalidateScoreCache(ctx, userID)
	return stored, nil
}

// ImportCheckIns journals a batch of events in one round trip, attaching the
// same record-time analysis as RecordCheckIn. Only the description and
// timestamp of each entry are used. Returns the number of entries written.
func (s *WellnessService) ImportCheckIns(ctx context.Context, userID string, entries []domain.EventRecord) (int, error) {
	ctx, span := s.tracer.Start(ctx, "wellness-service.import-check-ins")
	defer span.End()

	if s.checkIns == nil {
		return 0, fmt.Errorf("check-in journal is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, fmt.Errorf("user id is required")
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("at least one entry is required")
	}

	checkIns := make([]domain.CheckIn, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.Description) == "" {
			return 0, fmt.Errorf("every entry needs a description")
		}
		occurredAt := entry.Timestamp
		if occurredAt.IsZero() {
			occurredAt = s.now()
		}
		sentiment := s.sentiments.Analyze(entry.Description)
		emotion := s.emotions.Analyze(entry.Description)
		checkIns = append(checkIns, domain.CheckIn{
			UserID:      userID,
			Description: entry.Description,
			OccurredAt:  occurredAt.UTC(),
			StressLevel: sentiment.StressLevel,
			StressScore: sentiment.StressScore,
			Dimension:   emotion.Dimension,
			EmotionType: emotion.EmotionType,
		})
	}

	if err := s.checkIns.InsertCheckIns(ctx, checkIns); err != nil {
		return 0, fmt.Errorf("insert check-ins: %w", err)
	}
	s.invalidateScoreCache(ctx, userID)
	return len(checkIns), nil
}

func (s *WellnessService) ListCheckIns(ctx context.Context, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	ctx, span := s.tracer.Start(ctx, "wellness-service.list-check-ins")
	defer span.End()

	if s.checkIns == nil {
		return nil, fmt.Errorf("check-in journal is not configured")
	}
	return s.checkIns.ListCheckIns(ctx, filter)
}

// RecentCurve rebuilds the pressure curve from the user's journal window.
func (s *WellnessService) RecentCurve(ctx context.Context, userID string) (domain.PressureCurve, error) {
	ctx, span := s.tracer.Start(ctx, "wellness-service.recent-curve")
	defer span.End()

	events, err := s.recentEvents(ctx, userID)
	if err != nil {
		return domain.PressureCurve{}, err
	}
	return s.curves.GenerateFromEvents(events), nil
}

// RecentScore computes the resilience score over the journal window, with a
// short-lived per-user cache in front of the computation.
func (s *WellnessService) RecentScore(ctx context.Context, userID string) (domain.ResilienceScore, error) {
	ctx, span := s.tracer.Start(ctx, "wellness-service.recent-score")
	defer span.End()

	if cached, ok := s.cachedScore(ctx, userID); ok {
		return cached, nil
	}

	events, err := s.recentEvents(ctx, userID)
	if err != nil {
		return domain.ResilienceScore{}, err
	}
	score := s.scorer.CalculateScore(events)
	s.storeScore(ctx, userID, score)
	return score, nil
}

func (s *WellnessService) recentEvents(ctx context.Context, userID string) ([]domain.EventRecord, error) {
	if s.checkIns == nil {
		return nil, fmt.Errorf("check-in journal is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	since := s.now().UTC().AddDate(0, 0, -s.windowDays)
	checkIns, err := s.checkIns.ListCheckIns(ctx, domain.CheckInFilter{
		UserID: userID,
		Since:  since,
		Limit:  200,
	})
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	events := make([]domain.EventRecord, 0, len(checkIns))
	for _, c := range checkIns {
		events = append(events, c.Event())
	}
	return events, nil
}

func scoreCacheKey(userID string) string {
	return "resilience:score:" + userID
}

func (s *WellnessService) cachedScore(ctx context.Context, userID string) (domain.ResilienceScore, bool) {
	if s.cache == nil {
		return domain.ResilienceScore{}, false
	}
	raw, err := s.cache.Get(ctx, scoreCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("score cache get error for %s: %v", userID, err)
		}
		return domain.ResilienceScore{}, false
	}
	var score domain.ResilienceScore
	if err := json.Unmarshal(raw, &score); err != nil {
		log.Printf("score cache decode error for %s: %v", userID, err)
		return domain.ResilienceScore{}, false
	}
	return score, true
}

func (s *WellnessService) storeScore(ctx context.Context, userID string, score domain.ResilienceScore) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(score)
	if err != nil {
		log.Printf("score cache encode error for %s: %v", userID, err)
		return
	}
	if err := s.cache.Set(ctx, scoreCacheKey(userID), raw, s.cacheTTL).Err(); err != nil {
		log.Printf("score cache set error for %s: %v", userID, err)
	}
}

func (s *WellnessService) invalidateScoreCache(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, scoreCacheKey(userID)).Err(); err != nil {
		log.Printf("score cache invalidate error for %s: %v", userID, err)
	}
}
