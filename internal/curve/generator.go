package curve

import (
	"sort"
	"time"

	"steady-compass/internal/analysis"
	"steady-compass/internal/domain"
)

const (
	trendThreshold   = 0.1
	trendDamping     = 0.3
	predictionCount  = 3
	predictionWindow = 5
	defaultScore     = 0.3
)

const (
	StatusHighPressure = "high-pressure state"
	StatusModerate     = "moderate, recommend adjustment"
	StatusRising       = "rising, be careful"
	StatusFalling      = "falling, improving"
	StatusStable       = "stable, maintain"
)

// Generator turns ordered event records into a pressure curve. It keeps no
// working state between calls: GenerateFromEvents is a pure computation over
// its input, so one Generator can be shared across concurrent callers.
type Generator struct {
	emotions *analysis.EmotionAnalyzer
	now      func() time.Time
}

func NewGenerator(emotions *analysis.EmotionAnalyzer, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	if emotions == nil {
		emotions = analysis.NewEmotionAnalyzer(now)
	}
	return &Generator{emotions: emotions, now: now}
}

// GenerateFromEvents builds the full curve: data points sorted by timestamp,
// aggregate statistics, trend, and a three-step prediction. Missing optional
// event fields fall back to low / 0.3 / now.
func (g *Generator) GenerateFromEvents(events []domain.EventRecord) domain.PressureCurve {
	points := make([]domain.StressDataPoint, 0, len(events))
	for _, event := range events {
		points = append(points, g.buildDataPoint(event))
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	scores := make([]float64, len(points))
	for i, p := range points {
		scores[i] = p.StressScore
	}

	curve := domain.PressureCurve{
		DataPoints:  points,
		Trend:       analyzeTrend(scores),
		Predictions: predict(scores),
	}
	if len(scores) > 0 {
		curve.AverageStress = mean(scores)
		curve.PeakStress = maxOf(scores)
	}
	return curve
}

func (g *Generator) buildDataPoint(event domain.EventRecord) domain.StressDataPoint {
	level := event.StressLevel
	if !level.IsValid() {
		level = domain.StressLow
	}

	score := defaultScore
	if event.StressScore != nil {
		score = clamp01(*event.StressScore)
	}

	ts := event.Timestamp
	if ts.IsZero() {
		ts = g.now()
	}

	// The event's own dimension tag, if any, is the scorer's concern; the
	// data point carries the dimension detected from the text.
	emotion := g.emotions.Analyze(event.Description)

	return domain.StressDataPoint{
		Timestamp:        ts,
		StressLevel:      level,
		StressScore:      score,
		EmotionType:      emotion.EmotionType,
		Intensity:        emotion.Intensity,
		Dimension:        emotion.Dimension,
		EventDescription: event.Description,
	}
}

// analyzeTrend compares the mean of the first half of the sorted score
// sequence to the mean of the second half; the middle element of an odd
// count falls into the second half.
func analyzeTrend(scores []float64) domain.Trend {
	if len(scores) < 2 {
		return domain.TrendStable
	}

	mid := len(scores) / 2
	diff := mean(scores[mid:]) - mean(scores[:mid])

	switch {
	case diff > trendThreshold:
		return domain.TrendRising
	case diff < -trendThreshold:
		return domain.TrendFalling
	default:
		return domain.TrendStable
	}
}

// predict extrapolates three steps from the recent-window average, nudged by
// the window-over-window delta. A linear heuristic, not a forecast.
func predict(scores []float64) []float64 {
	if len(scores) < predictionCount {
		last := defaultScore
		if len(scores) > 0 {
			last = scores[len(scores)-1]
		}
		return []float64{last, last, last}
	}

	window := predictionWindow
	if len(scores) < window {
		window = len(scores)
	}
	recentAvg := mean(scores[len(scores)-window:])

	trendFactor := 0.0
	if len(scores) >= window*2 {
		earlierAvg := mean(scores[len(scores)-window*2 : len(scores)-window])
		trendFactor = (recentAvg - earlierAvg) * trendDamping
	}

	predictions := make([]float64, 0, predictionCount)
	for i := 0; i < predictionCount; i++ {
		predictions = append(predictions, clamp01(recentAvg+trendFactor*float64(i+1)))
	}
	return predictions
}

// PeaksAndValleys extracts interior strict local extrema: peaks must also
// exceed the curve average, valleys must fall below it.
func (g *Generator) PeaksAndValleys(curve domain.PressureCurve) domain.PeaksAndValleys {
	result := domain.PeaksAndValleys{
		Peaks:   []domain.StressDataPoint{},
		Valleys: []domain.StressDataPoint{},
	}
	if len(curve.DataPoints) < 3 {
		return result
	}

	points := curve.DataPoints
	for i := 1; i < len(points)-1; i++ {
		score := points[i].StressScore
		if score > points[i-1].StressScore && score > points[i+1].StressScore {
			if score > curve.AverageStress {
				result.Peaks = append(result.Peaks, points[i])
			}
		} else if score < points[i-1].StressScore && score < points[i+1].StressScore {
			if score < curve.AverageStress {
				result.Valleys = append(result.Valleys, points[i])
			}
		}
	}
	return result
}

// Summary bundles the curve statistics with extremum counts and a
// qualitative status line.
func (g *Generator) Summary(curve domain.PressureCurve) domain.CurveSummary {
	extrema := g.PeaksAndValleys(curve)

	return domain.CurveSummary{
		TotalDataPoints: len(curve.DataPoints),
		AverageStress:   curve.AverageStress,
		PeakStress:      curve.PeakStress,
		Trend:           curve.Trend,
		PeaksCount:      len(extrema.Peaks),
		ValleysCount:    len(extrema.Valleys),
		Predictions:     curve.Predictions,
		Status:          statusFor(curve),
	}
}

func statusFor(curve domain.PressureCurve) string {
	switch {
	case curve.AverageStress >= 0.8:
		return StatusHighPressure
	case curve.AverageStress >= 0.6:
		return StatusModerate
	case curve.Trend == domain.TrendRising:
		return StatusRising
	case curve.Trend == domain.TrendFalling:
		return StatusFalling
	default:
		return StatusStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
