package domain

import "time"

type EmotionType string

const (
	EmotionJoy        EmotionType = "joy"
	EmotionAnxiety    EmotionType = "anxiety"
	EmotionFatigue    EmotionType = "fatigue"
	EmotionAnger      EmotionType = "anger"
	EmotionSadness    EmotionType = "sadness"
	EmotionCalm       EmotionType = "calm"
	EmotionExcitement EmotionType = "excitement"
	EmotionStress     EmotionType = "stress"
)

// EmotionTypes is the fixed enumeration order. Keyword-vote ties resolve to
// the earliest entry.
var EmotionTypes = []EmotionType{
	EmotionJoy,
	EmotionAnxiety,
	EmotionFatigue,
	EmotionAnger,
	EmotionSadness,
	EmotionCalm,
	EmotionExcitement,
	EmotionStress,
}

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

func (s StressLevel) IsValid() bool {
	return s == StressLow || s == StressMedium || s == StressHigh
}

func (s StressLevel) Emoji() string {
	switch s {
	case StressMedium:
		return "🟡"
	case StressHigh:
		return "🔴"
	default:
		return "🟢"
	}
}

// ParseStressLevel maps a free-form string onto a StressLevel, defaulting to low.
func ParseStressLevel(raw string) StressLevel {
	switch StressLevel(raw) {
	case StressMedium:
		return StressMedium
	case StressHigh:
		return StressHigh
	default:
		return StressLow
	}
}

type ResilienceLevel string

const (
	ResilienceExcellent ResilienceLevel = "excellent"
	ResilienceGood      ResilienceLevel = "good"
	ResilienceNormal    ResilienceLevel = "normal"
	ResilienceWarning   ResilienceLevel = "warning"
	ResilienceCritical  ResilienceLevel = "critical"
)

type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// Dimension labels produced by keyword detection. Callers may supply
// arbitrary labels on events; these are only the detected values.
const (
	DimensionWork     = "work"
	DimensionHealth   = "health"
	DimensionSocial   = "social"
	DimensionLearning = "learning"
	DimensionOther    = "other"
	DimensionUnknown  = "unknown"
)

type EmotionAnalysis struct {
	EmotionType EmotionType `json:"emotion_type"`
	Intensity   float64     `json:"intensity"`
	Confidence  float64     `json:"confidence"`
	Dimension   string      `json:"dimension"`
	Timestamp   time.Time   `json:"timestamp"`
}

type StressDetails struct {
	Level           StressLevel `json:"level"`
	Emoji           string      `json:"emoji"`
	MatchedKeywords []string    `json:"matched_keywords"`
	Reason          string      `json:"reason"`
}

type EventSentiment struct {
	StressLevel     StressLevel `json:"stress_level"`
	Emoji           string      `json:"emoji"`
	StressScore     float64     `json:"stress_score"`
	MatchedKeywords []string    `json:"matched_keywords"`
	Factors         []string    `json:"factors"`
	Suggestions     []string    `json:"suggestions"`
}

// EventRecord is the caller-assembled input to curve generation and scoring.
// Zero-valued optional fields fall back to documented defaults: timestamp
// now, stress level low, stress score 0.3.
type EventRecord struct {
	Description string      `json:"description"`
	Timestamp   time.Time   `json:"timestamp,omitempty"`
	StressLevel StressLevel `json:"stress_level,omitempty"`
	StressScore *float64    `json:"stress_score,omitempty"`
	Dimension   string      `json:"dimension,omitempty"`
}

type StressDataPoint struct {
	Timestamp        time.Time   `json:"timestamp"`
	StressLevel      StressLevel `json:"stress_level"`
	StressScore      float64     `json:"stress_score"`
	EmotionType      EmotionType `json:"emotion_type"`
	Intensity        float64     `json:"intensity"`
	Dimension        string      `json:"dimension"`
	EventDescription string      `json:"event_description"`
}

type PressureCurve struct {
	DataPoints    []StressDataPoint `json:"data_points"`
	AverageStress float64           `json:"average_stress"`
	PeakStress    float64           `json:"peak_stress"`
	Trend         Trend             `json:"trend"`
	Predictions   []float64         `json:"predictions"`
}

type PeaksAndValleys struct {
	Peaks   []StressDataPoint `json:"peaks"`
	Valleys []StressDataPoint `json:"valleys"`
}

type CurveSummary struct {
	TotalDataPoints int       `json:"total_data_points"`
	AverageStress   float64   `json:"average_stress"`
	PeakStress      float64   `json:"peak_stress"`
	Trend           Trend     `json:"trend"`
	PeaksCount      int       `json:"peaks_count"`
	ValleysCount    int       `json:"valleys_count"`
	Predictions     []float64 `json:"predictions"`
	Status          string    `json:"status"`
}

type ResilienceScore struct {
	OverallScore    float64            `json:"overall_score"`
	Level           ResilienceLevel    `json:"level"`
	DimensionScores map[string]float64 `json:"dimension_scores"`
	Suggestions     []string           `json:"suggestions"`
	Timestamp       time.Time          `json:"timestamp"`
}

type SuggestionItem struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
}

type ActionPlan struct {
	Immediate  []SuggestionItem `json:"immediate"`
	ShortTerm  []SuggestionItem `json:"short_term"`
	LongTerm   []SuggestionItem `json:"long_term"`
	TotalCount int              `json:"total_count"`
}

// CheckIn is a persisted journal entry: the raw event plus the sentiment
// attached at record time. Analysis results are otherwise never stored.
type CheckIn struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"user_id"`
	Description string      `json:"description"`
	OccurredAt  time.Time   `json:"occurred_at"`
	StressLevel StressLevel `json:"stress_level"`
	StressScore float64     `json:"stress_score"`
	Dimension   string      `json:"dimension"`
	EmotionType EmotionType `json:"emotion_type"`
}

type CheckInFilter struct {
	UserID string
	Since  time.Time
	Limit  int
}

// Event converts a stored check-in back into curve/scorer input.
func (c CheckIn) Event() EventRecord {
	score := c.StressScore
	return EventRecord{
		Description: c.Description,
		Timestamp:   c.OccurredAt,
		StressLevel: c.StressLevel,
		StressScore: &score,
		Dimension:   c.Dimension,
	}
}
