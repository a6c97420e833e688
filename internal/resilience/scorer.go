package resilience

import (
	"time"

	"steady-compass/internal/curve"
	"steady-compass/internal/domain"
)

const (
	trendBonus            = 10.0
	peakPenalty           = 15.0
	peakPenaltyCutoff     = 0.8
	dataBonusPerPoint     = 0.5
	dataBonusCap          = 10.0
	groupingScoreFallback = 0.5
)

var levelSuggestions = map[domain.ResilienceLevel][]string{
	domain.ResilienceCritical: {
		"🚨 Resilience is at a critical point; consider seeking professional help now",
		"Consider taking time off to reset your work and life rhythm",
		"Talk to someone you trust instead of carrying this alone",
	},
	domain.ResilienceWarning: {
		"⚠️ Resilience needs attention; it is time to act",
		"Identify your stress sources and make a coping plan",
		"Build more rest and relaxation into your schedule",
	},
	domain.ResilienceNormal: {
		"📍 Resilience is steady; keep it up",
		"Watch the pressure trend and get ahead of it",
		"Keep building your stress-coping toolkit",
	},
	domain.ResilienceGood: {
		"✅ Resilience looks good; keep it up",
		"Consider taking on more ambitious goals",
		"Help others build their resilience",
	},
	domain.ResilienceExcellent: {
		"🌟 Resilience is excellent; outstanding",
		"Maintain your current habits and keep refining them",
		"Share what works for you with others",
	},
}

// Scorer collapses a pressure curve into a single 0-100 composite with a
// tiered level, per-dimension breakdown, and level-appropriate suggestions.
type Scorer struct {
	curves *curve.Generator
	now    func() time.Time
}

func NewScorer(curves *curve.Generator, now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	if curves == nil {
		curves = curve.NewGenerator(nil, now)
	}
	return &Scorer{curves: curves, now: now}
}

func (s *Scorer) CalculateScore(events []domain.EventRecord) domain.ResilienceScore {
	c := s.curves.GenerateFromEvents(events)

	overall := s.overallScore(c)

	return domain.ResilienceScore{
		OverallScore:    overall,
		Level:           LevelForScore(overall),
		DimensionScores: dimensionScores(events),
		Suggestions:     buildSuggestions(LevelForScore(overall), c.Trend),
		Timestamp:       s.now(),
	}
}

func (s *Scorer) overallScore(c domain.PressureCurve) float64 {
	base := 100 - c.AverageStress*100

	bonus := 0.0
	switch c.Trend {
	case domain.TrendFalling:
		bonus = trendBonus
	case domain.TrendRising:
		bonus = -trendBonus
	}

	penalty := 0.0
	if c.PeakStress > peakPenaltyCutoff {
		penalty = -peakPenalty
	}

	dataBonus := dataBonusPerPoint * float64(len(c.DataPoints))
	if dataBonus > dataBonusCap {
		dataBonus = dataBonusCap
	}

	score := base + bonus + penalty + dataBonus
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func LevelForScore(score float64) domain.ResilienceLevel {
	switch {
	case score >= 85:
		return domain.ResilienceExcellent
	case score >= 70:
		return domain.ResilienceGood
	case score >= 50:
		return domain.ResilienceNormal
	case score >= 30:
		return domain.ResilienceWarning
	default:
		return domain.ResilienceCritical
	}
}

// dimensionScores groups the raw events by their caller-supplied dimension
// tag and converts each group's average stress into a 0-100 resilience
// figure. Caller-supplied scores are clamped to [0,1] first; events without
// a score contribute 0.5 here (not the 0.3 curve default).
func dimensionScores(events []domain.EventRecord) map[string]float64 {
	grouped := make(map[string][]float64)
	for _, event := range events {
		dimension := event.Dimension
		if dimension == "" {
			dimension = domain.DimensionOther
		}
		score := groupingScoreFallback
		if event.StressScore != nil {
			score = clampUnit(*event.StressScore)
		}
		grouped[dimension] = append(grouped[dimension], score)
	}

	scores := make(map[string]float64, len(grouped))
	for dimension, values := range grouped {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		avg := sum / float64(len(values))
		scores[dimension] = (1 - avg) * 100
	}
	return scores
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func buildSuggestions(level domain.ResilienceLevel, trend domain.Trend) []string {
	suggestions := append([]string(nil), levelSuggestions[level]...)

	switch trend {
	case domain.TrendRising:
		suggestions = append(suggestions, "⚠️ Pressure is trending upward; stay alert")
	case domain.TrendFalling:
		suggestions = append(suggestions, "✅ Pressure is trending downward; things are improving")
	}
	return suggestions
}
