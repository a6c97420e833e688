package analysis

import "steady-compass/internal/domain"

// Fixed tier scores: the score reflects the tier, not keyword density.
var stressScoreByLevel = map[domain.StressLevel]float64{
	domain.StressLow:    0.3,
	domain.StressMedium: 0.6,
	domain.StressHigh:   0.9,
}

var suggestionsByLevel = map[domain.StressLevel][]string{
	domain.StressHigh: {
		"Prepare ahead of time to avoid last-minute pressure",
		"Break the task down and complete it step by step",
		"Ask the team for help if needed",
		"Make sure you get enough rest and sleep",
	},
	domain.StressMedium: {
		"Plan your time with buffer to spare",
		"Write important items down so nothing slips",
		"Stay focused to keep efficiency up",
	},
	domain.StressLow: {
		"Keep up the steady working rhythm",
		"Review and adjust your plans regularly",
	},
}

// EventSentimentAnalyzer is a thin composition over StressEventClassifier:
// it maps the tier to a fixed score, labels the matched keywords by tier,
// and attaches the canned suggestion set.
type EventSentimentAnalyzer struct {
	classifier *StressEventClassifier
}

func NewEventSentimentAnalyzer(classifier *StressEventClassifier) *EventSentimentAnalyzer {
	if classifier == nil {
		classifier = NewStressEventClassifier()
	}
	return &EventSentimentAnalyzer{classifier: classifier}
}

func (a *EventSentimentAnalyzer) Analyze(text string) domain.EventSentiment {
	details := a.classifier.ClassifyWithDetails(text)

	return domain.EventSentiment{
		StressLevel:     details.Level,
		Emoji:           details.Emoji,
		StressScore:     StressScoreFor(details.Level),
		MatchedKeywords: details.MatchedKeywords,
		Factors:         extractFactors(details.MatchedKeywords),
		Suggestions:     append([]string(nil), suggestionsByLevel[details.Level]...),
	}
}

// StressScoreFor returns the fixed numeric score for a tier (low when the
// tier is unrecognized).
func StressScoreFor(level domain.StressLevel) float64 {
	if score, ok := stressScoreByLevel[level]; ok {
		return score
	}
	return stressScoreByLevel[domain.StressLow]
}

// extractFactors labels each matched keyword by the tier list it came from.
// Keywords matched case-insensitively but absent from the lists verbatim are
// skipped.
func extractFactors(keywords []string) []string {
	factors := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		switch {
		case containsKeyword(highStressKeywords, kw):
			factors = append(factors, "high-importance task: "+kw)
		case containsKeyword(mediumStressKeywords, kw):
			factors = append(factors, "planned task: "+kw)
		case containsKeyword(timePressureKeywords, kw):
			factors = append(factors, "time pressure: "+kw)
		}
	}
	return factors
}
