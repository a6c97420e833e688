package mcp

import (
	"context"
	"encoding/json"
	"time"

	"steady-compass/internal/domain"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type stubWellness struct {
	lastAnalyzedText string
	lastBatchTexts   []string
	lastEvents       []domain.EventRecord

	lastSuggestLevel     string
	lastSuggestDimension string
	lastSuggestEmotion   string
}

func (s *stubWellness) AnalyzeEmotion(ctx context.Context, text string) domain.EmotionAnalysis {
	s.lastAnalyzedText = text
	return domain.EmotionAnalysis{
		EmotionType: domain.EmotionAnxiety,
		Intensity:   0.6,
		Confidence:  0.75,
		Dimension:   domain.DimensionWork,
		Timestamp:   time.Unix(0, 0).UTC(),
	}
}

func (s *stubWellness) BatchAnalyzeEmotions(ctx context.Context, texts []string) []domain.EmotionAnalysis {
	s.lastBatchTexts = append([]string(nil), texts...)
	results := make([]domain.EmotionAnalysis, len(texts))
	for i := range texts {
		results[i] = s.AnalyzeEmotion(ctx, texts[i])
	}
	return results
}

func (s *stubWellness) ClassifyStress(ctx context.Context, text string) domain.StressDetails {
	return domain.StressDetails{
		Level:           domain.StressHigh,
		Emoji:           "🔴",
		MatchedKeywords: []string{"最后期限"},
		Reason:          "high stress keywords detected",
	}
}

func (s *stubWellness) AnalyzeEvent(ctx context.Context, text string) domain.EventSentiment {
	return domain.EventSentiment{
		StressLevel: domain.StressHigh,
		Emoji:       "🔴",
		StressScore: 0.9,
		Factors:     []string{"time pressure: 明天"},
		Suggestions: []string{"Break the task into smaller steps"},
	}
}

func (s *stubWellness) GenerateCurve(ctx context.Context, events []domain.EventRecord) domain.PressureCurve {
	s.lastEvents = append([]domain.EventRecord(nil), events...)
	return domain.PressureCurve{
		AverageStress: 0.6,
		PeakStress:    0.9,
		Trend:         domain.TrendRising,
		Predictions:   []float64{0.6, 0.6, 0.6},
	}
}

func (s *stubWellness) CurveSummary(ctx context.Context, events []domain.EventRecord) domain.CurveSummary {
	return domain.CurveSummary{
		TotalDataPoints: len(events),
		AverageStress:   0.6,
		PeakStress:      0.9,
		Trend:           domain.TrendRising,
		Predictions:     []float64{0.6, 0.6, 0.6},
		Status:          "stress rising, consider adjustments",
	}
}

func (s *stubWellness) CalculateScore(ctx context.Context, events []domain.EventRecord) domain.ResilienceScore {
	s.lastEvents = append([]domain.EventRecord(nil), events...)
	// The output schema wants an object for dimension_scores; a nil map
	// would marshal as null.
	return domain.ResilienceScore{
		OverallScore:    72.5,
		Level:           domain.ResilienceGood,
		DimensionScores: map[string]float64{domain.DimensionWork: 40},
		Suggestions:     []string{"Consider taking on more ambitious goals"},
		Timestamp:       time.Unix(0, 0).UTC(),
	}
}

func (s *stubWellness) GetSuggestions(ctx context.Context, stressLevel, dimension, emotionType string) []domain.SuggestionItem {
	s.lastSuggestLevel = stressLevel
	s.lastSuggestDimension = dimension
	s.lastSuggestEmotion = emotionType
	return []domain.SuggestionItem{
		{Category: "Relaxation Techniques", Suggestion: "Try 5 minutes of deep breathing"},
	}
}

func (s *stubWellness) GetActionPlan(ctx context.Context, stressLevel, dimension, emotionType string) domain.ActionPlan {
	s.lastSuggestLevel = stressLevel
	return domain.ActionPlan{
		Immediate:  []domain.SuggestionItem{{Category: "Relaxation Techniques", Suggestion: "Pause and breathe"}},
		TotalCount: 1,
	}
}

func testServer() (*sdkmcp.Server, *stubWellness) {
	wellness := &stubWellness{}
	srv := NewServer(nil, wellness, ServerConfig{RequestTimeout: time.Second})
	return srv, wellness
}

func connectInMemory(ctx context.Context, srv *sdkmcp.Server) (*sdkmcp.ClientSession, context.CancelFunc, error) {
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	runCtx, cancel := context.WithCancel(ctx)
	go func() { _ = srv.Run(runCtx, serverTransport) }()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return session, cancel, nil
}

func decodeResourceJSON(result *sdkmcp.ReadResourceResult, out any) error {
	if len(result.Contents) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(result.Contents[0].Text), out)
}
