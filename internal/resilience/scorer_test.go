package resilience

import (
	"math"
	"strings"
	"testing"
	"time"

	"steady-compass/internal/domain"
)

func fixedNow() time.Time {
	return time.Unix(1700000000, 0).UTC()
}

func scoredEvents(scores ...float64) []domain.EventRecord {
	events := make([]domain.EventRecord, 0, len(scores))
	for i := range scores {
		score := scores[i]
		events = append(events, domain.EventRecord{
			Description: "task",
			StressLevel: domain.StressMedium,
			StressScore: &score,
			Timestamp:   fixedNow().Add(time.Duration(i) * time.Minute),
		})
	}
	return events
}

func TestCalculateScoreLowStressHistory(t *testing.T) {
	scorer := NewScorer(nil, fixedNow)

	result := scorer.CalculateScore(scoredEvents(0.2, 0.2, 0.2, 0.2, 0.2))
	if math.Abs(result.OverallScore-82.5) > 1e-9 {
		t.Fatalf("expected score 82.5, got %f", result.OverallScore)
	}
	if result.Level != domain.ResilienceGood {
		t.Fatalf("expected good, got %s", result.Level)
	}
	if !result.Timestamp.Equal(fixedNow()) {
		t.Fatalf("expected injected clock timestamp, got %s", result.Timestamp)
	}
}

func TestCalculateScoreHighStressHistory(t *testing.T) {
	scorer := NewScorer(nil, fixedNow)

	result := scorer.CalculateScore(scoredEvents(0.9, 0.9, 0.9, 0.9, 0.9))
	if result.OverallScore != 0 {
		t.Fatalf("expected score clamped to 0, got %f", result.OverallScore)
	}
	if result.Level != domain.ResilienceCritical {
		t.Fatalf("expected critical, got %s", result.Level)
	}
}

func TestCalculateScoreRisingTrendAppendsWarning(t *testing.T) {
	scorer := NewScorer(nil, fixedNow)

	result := scorer.CalculateScore(scoredEvents(0.2, 0.3, 0.8, 0.9))
	last := result.Suggestions[len(result.Suggestions)-1]
	if !strings.Contains(last, "trending upward") {
		t.Fatalf("expected rising-trend suggestion, got %q", last)
	}
}

func TestCalculateScoreFallingTrendAppendsEncouragement(t *testing.T) {
	scorer := NewScorer(nil, fixedNow)

	result := scorer.CalculateScore(scoredEvents(0.9, 0.8, 0.3, 0.2))
	last := result.Suggestions[len(result.Suggestions)-1]
	if !strings.Contains(last, "trending downward") {
		t.Fatalf("expected falling-trend suggestion, got %q", last)
	}
}

func TestCalculateScoreEmptyHistory(t *testing.T) {
	scorer := NewScorer(nil, fixedNow)

	result := scorer.CalculateScore(nil)
	if result.OverallScore != 100 {
		t.Fatalf("expected 100 for empty history, got %f", result.OverallScore)
	}
	if result.Level != domain.ResilienceExcellent {
		t.Fatalf("expected excellent, got %s", result.Level)
	}
	if len(result.DimensionScores) != 0 {
		t.Fatalf("expected no dimension scores, got %v", result.DimensionScores)
	}
}

func TestDimensionScoresGroupingAndFallbacks(t *testing.T) {
	score1, score2 := 0.8, 0.6
	events := []domain.EventRecord{
		{Description: "sprint", Dimension: domain.DimensionWork, StressScore: &score1},
		{Description: "standup", Dimension: domain.DimensionWork, StressScore: &score2},
		{Description: "untagged"},
	}

	scores := dimensionScores(events)
	if len(scores) != 2 {
		t.Fatalf("expected 2 dimensions, got %v", scores)
	}
	if math.Abs(scores[domain.DimensionWork]-30) > 1e-9 {
		t.Fatalf("expected work score 30, got %f", scores[domain.DimensionWork])
	}
	// Missing dimension falls back to other; missing score contributes 0.5.
	if math.Abs(scores[domain.DimensionOther]-50) > 1e-9 {
		t.Fatalf("expected other score 50, got %f", scores[domain.DimensionOther])
	}
}

func TestDimensionScoresClampOutOfRangeScores(t *testing.T) {
	tooHigh, negative := 1.5, -0.4
	events := []domain.EventRecord{
		{Description: "冲刺", Dimension: domain.DimensionWork, StressScore: &tooHigh},
		{Description: "午睡", Dimension: domain.DimensionHealth, StressScore: &negative},
	}

	scores := dimensionScores(events)
	if scores[domain.DimensionWork] != 0 {
		t.Fatalf("expected work score clamped to 0, got %f", scores[domain.DimensionWork])
	}
	if scores[domain.DimensionHealth] != 100 {
		t.Fatalf("expected health score clamped to 100, got %f", scores[domain.DimensionHealth])
	}
	for dimension, score := range scores {
		if score < 0 || score > 100 {
			t.Fatalf("dimension %s outside 0-100: %f", dimension, score)
		}
	}
}

func TestLevelForScoreBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.ResilienceLevel
	}{
		{100, domain.ResilienceExcellent},
		{85, domain.ResilienceExcellent},
		{84.9, domain.ResilienceGood},
		{70, domain.ResilienceGood},
		{69.9, domain.ResilienceNormal},
		{50, domain.ResilienceNormal},
		{49.9, domain.ResilienceWarning},
		{30, domain.ResilienceWarning},
		{29.9, domain.ResilienceCritical},
		{0, domain.ResilienceCritical},
	}
	for _, tc := range cases {
		if got := LevelForScore(tc.score); got != tc.want {
			t.Fatalf("LevelForScore(%f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
