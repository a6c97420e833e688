package analysis

import (
	"reflect"
	"testing"

	"steady-compass/internal/domain"
)

func TestEventSentimentHighStress(t *testing.T) {
	analyzer := NewEventSentimentAnalyzer(nil)

	result := analyzer.Analyze("明天要交项目周报")
	if result.StressLevel != domain.StressHigh {
		t.Fatalf("expected high, got %s", result.StressLevel)
	}
	if result.StressScore != 0.9 {
		t.Fatalf("expected score 0.9, got %f", result.StressScore)
	}
	if result.Emoji != "🔴" {
		t.Fatalf("expected red emoji, got %s", result.Emoji)
	}
	if len(result.Suggestions) != 4 {
		t.Fatalf("expected 4 suggestions for high, got %d", len(result.Suggestions))
	}
}

func TestEventSentimentMediumStress(t *testing.T) {
	analyzer := NewEventSentimentAnalyzer(NewStressEventClassifier())

	result := analyzer.Analyze("下周安排一次评审会议")
	if result.StressLevel != domain.StressMedium {
		t.Fatalf("expected medium, got %s", result.StressLevel)
	}
	if result.StressScore != 0.6 {
		t.Fatalf("expected score 0.6, got %f", result.StressScore)
	}
	if len(result.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions for medium, got %d", len(result.Suggestions))
	}
}

func TestEventSentimentLowStress(t *testing.T) {
	analyzer := NewEventSentimentAnalyzer(nil)

	result := analyzer.Analyze("晚上散步")
	if result.StressLevel != domain.StressLow {
		t.Fatalf("expected low, got %s", result.StressLevel)
	}
	if result.StressScore != 0.3 {
		t.Fatalf("expected score 0.3, got %f", result.StressScore)
	}
	if result.Emoji != "🟢" {
		t.Fatalf("expected green emoji, got %s", result.Emoji)
	}
	if len(result.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions for low, got %d", len(result.Suggestions))
	}
	if len(result.Factors) != 0 {
		t.Fatalf("expected no factors, got %v", result.Factors)
	}
}

func TestEventSentimentFactorsLabelledByTier(t *testing.T) {
	analyzer := NewEventSentimentAnalyzer(nil)

	result := analyzer.Analyze("明天必须完成会议材料")
	want := []string{
		"high-importance task: 必须完成",
		"planned task: 会议",
		"time pressure: 明天",
	}
	if !reflect.DeepEqual(result.Factors, want) {
		t.Fatalf("unexpected factors: %v", result.Factors)
	}
}

func TestStressScoreForUnknownLevelFallsBackToLow(t *testing.T) {
	if got := StressScoreFor(domain.StressLevel("bogus")); got != 0.3 {
		t.Fatalf("expected fallback 0.3, got %f", got)
	}
}
