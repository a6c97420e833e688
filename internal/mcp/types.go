package mcp

import (
	"fmt"
	"strings"

	"steady-compass/internal/domain"
)

const (
	maxBatchTexts  = 100
	maxCurveEvents = 500
)

type emotionAnalyzeInput struct {
	Text string `json:"text" jsonschema:"free text to analyze (Chinese or English)"`
}

type emotionAnalyzeOutput struct {
	Analysis domain.EmotionAnalysis `json:"analysis"`
}

type emotionBatchInput struct {
	Texts []string `json:"texts" jsonschema:"texts to analyze, max 100"`
}

type emotionBatchOutput struct {
	Results []domain.EmotionAnalysis `json:"results"`
}

type stressClassifyInput struct {
	Text string `json:"text" jsonschema:"event text to classify"`
}

type stressClassifyOutput struct {
	Details domain.StressDetails `json:"details"`
}

type eventSentimentInput struct {
	Text string `json:"text" jsonschema:"event text to analyze"`
}

type eventSentimentOutput struct {
	Sentiment domain.EventSentiment `json:"sentiment"`
}

type pressureCurveInput struct {
	Events []domain.EventRecord `json:"events" jsonschema:"event records, max 500"`
}

type pressureCurveOutput struct {
	Curve   domain.PressureCurve `json:"curve"`
	Summary domain.CurveSummary  `json:"summary"`
}

type resilienceScoreInput struct {
	Events []domain.EventRecord `json:"events" jsonschema:"event records, max 500"`
}

type resilienceScoreOutput struct {
	Score domain.ResilienceScore `json:"score"`
}

type suggestionsGetInput struct {
	StressLevel string `json:"stress_level" jsonschema:"stress tier: low, medium, high"`
	Dimension   string `json:"dimension,omitempty" jsonschema:"optional life dimension: work, health, social, learning, other"`
	EmotionType string `json:"emotion_type,omitempty" jsonschema:"optional emotion type, e.g. anxiety, fatigue"`
}

type suggestionsGetOutput struct {
	Suggestions []domain.SuggestionItem `json:"suggestions"`
}

type actionPlanGetInput struct {
	StressLevel string `json:"stress_level" jsonschema:"stress tier: low, medium, high"`
	Dimension   string `json:"dimension,omitempty" jsonschema:"optional life dimension: work, health, social, learning, other"`
	EmotionType string `json:"emotion_type,omitempty" jsonschema:"optional emotion type, e.g. anxiety, fatigue"`
}

type actionPlanGetOutput struct {
	Plan domain.ActionPlan `json:"plan"`
}

func normalizeText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text is required")
	}
	return text, nil
}

func normalizeBatchTexts(texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts are required")
	}
	if len(texts) > maxBatchTexts {
		return nil, fmt.Errorf("too many texts: %d, max %d", len(texts), maxBatchTexts)
	}
	return texts, nil
}

func normalizeEvents(events []domain.EventRecord) ([]domain.EventRecord, error) {
	if len(events) > maxCurveEvents {
		return nil, fmt.Errorf("too many events: %d, max %d", len(events), maxCurveEvents)
	}
	return events, nil
}

func normalizeStressLevel(raw string) (string, error) {
	level := domain.StressLevel(strings.ToLower(strings.TrimSpace(raw)))
	if !level.IsValid() {
		return "", fmt.Errorf("stress_level must be low, medium, or high")
	}
	return string(level), nil
}
