package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *mcp.Server, wellness WellnessReader) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "emotion_analyze",
		Description: "Classify the emotion in free text with intensity, confidence, and life dimension",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in emotionAnalyzeInput) (*mcp.CallToolResult, emotionAnalyzeOutput, error) {
		if wellness == nil {
			return nil, emotionAnalyzeOutput{}, fmt.Errorf("wellness service unavailable")
		}
		text, err := normalizeText(in.Text)
		if err != nil {
			return nil, emotionAnalyzeOutput{}, err
		}
		return nil, emotionAnalyzeOutput{Analysis: wellness.AnalyzeEmotion(ctx, text)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "emotion_analyze_batch",
		Description: "Classify emotions for multiple texts in one call",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in emotionBatchInput) (*mcp.CallToolResult, emotionBatchOutput, error) {
		if wellness == nil {
			return nil, emotionBatchOutput{}, fmt.Errorf("wellness service unavailable")
		}
		texts, err := normalizeBatchTexts(in.Texts)
		if err != nil {
			return nil, emotionBatchOutput{}, err
		}
		return nil, emotionBatchOutput{Results: wellness.BatchAnalyzeEmotions(ctx, texts)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stress_classify",
		Description: "Classify event text into a stress tier with matched keywords and a reason",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in stressClassifyInput) (*mcp.CallToolResult, stressClassifyOutput, error) {
		if wellness == nil {
			return nil, stressClassifyOutput{}, fmt.Errorf("wellness service unavailable")
		}
		return nil, stressClassifyOutput{Details: wellness.ClassifyStress(ctx, in.Text)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "event_sentiment",
		Description: "Full event sentiment: stress tier, score, contributing factors, and suggestions",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in eventSentimentInput) (*mcp.CallToolResult, eventSentimentOutput, error) {
		if wellness == nil {
			return nil, eventSentimentOutput{}, fmt.Errorf("wellness service unavailable")
		}
		return nil, eventSentimentOutput{Sentiment: wellness.AnalyzeEvent(ctx, in.Text)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pressure_curve",
		Description: "Build a time-ordered pressure curve with trend, predictions, and a summary",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in pressureCurveInput) (*mcp.CallToolResult, pressureCurveOutput, error) {
		if wellness == nil {
			return nil, pressureCurveOutput{}, fmt.Errorf("wellness service unavailable")
		}
		events, err := normalizeEvents(in.Events)
		if err != nil {
			return nil, pressureCurveOutput{}, err
		}
		return nil, pressureCurveOutput{
			Curve:   wellness.GenerateCurve(ctx, events),
			Summary: wellness.CurveSummary(ctx, events),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resilience_score",
		Description: "Collapse events into a 0-100 resilience score with level and suggestions",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in resilienceScoreInput) (*mcp.CallToolResult, resilienceScoreOutput, error) {
		if wellness == nil {
			return nil, resilienceScoreOutput{}, fmt.Errorf("wellness service unavailable")
		}
		events, err := normalizeEvents(in.Events)
		if err != nil {
			return nil, resilienceScoreOutput{}, err
		}
		return nil, resilienceScoreOutput{Score: wellness.CalculateScore(ctx, events)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggestions_get",
		Description: "Get stress-management suggestions for a stress tier, dimension, and emotion",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in suggestionsGetInput) (*mcp.CallToolResult, suggestionsGetOutput, error) {
		if wellness == nil {
			return nil, suggestionsGetOutput{}, fmt.Errorf("wellness service unavailable")
		}
		level, err := normalizeStressLevel(in.StressLevel)
		if err != nil {
			return nil, suggestionsGetOutput{}, err
		}
		return nil, suggestionsGetOutput{
			Suggestions: wellness.GetSuggestions(ctx, level, in.Dimension, in.EmotionType),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "action_plan_get",
		Description: "Get a phased action plan (immediate, short-term, long-term) for a stress tier",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in actionPlanGetInput) (*mcp.CallToolResult, actionPlanGetOutput, error) {
		if wellness == nil {
			return nil, actionPlanGetOutput{}, fmt.Errorf("wellness service unavailable")
		}
		level, err := normalizeStressLevel(in.StressLevel)
		if err != nil {
			return nil, actionPlanGetOutput{}, err
		}
		return nil, actionPlanGetOutput{
			Plan: wellness.GetActionPlan(ctx, level, in.Dimension, in.EmotionType),
		}, nil
	})
}
