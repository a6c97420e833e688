package mcp

import (
	"context"

	"steady-compass/internal/domain"
)

// WellnessReader exposes the analysis operations served over MCP. The
// wellness service satisfies it.
type WellnessReader interface {
	AnalyzeEmotion(ctx context.Context, text string) domain.EmotionAnalysis
	BatchAnalyzeEmotions(ctx context.Context, texts []string) []domain.EmotionAnalysis
	ClassifyStress(ctx context.Context, text string) domain.StressDetails
	AnalyzeEvent(ctx context.Context, text string) domain.EventSentiment
	GenerateCurve(ctx context.Context, events []domain.EventRecord) domain.PressureCurve
	CurveSummary(ctx context.Context, events []domain.EventRecord) domain.CurveSummary
	CalculateScore(ctx context.Context, events []domain.EventRecord) domain.ResilienceScore
	GetSuggestions(ctx context.Context, stressLevel, dimension, emotionType string) []domain.SuggestionItem
	GetActionPlan(ctx context.Context, stressLevel, dimension, emotionType string) domain.ActionPlan
}
