package job

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"steady-compass/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type CurveSource interface {
	RecentCurve(ctx context.Context, userID string) (domain.PressureCurve, error)
}

type CurveSummarizer interface {
	Summary(curve domain.PressureCurve) domain.CurveSummary
}

type PressureNotifier interface {
	Subscribers() []int64
	NotifyPressure(ctx context.Context, chatID int64, summary domain.CurveSummary) error
}

// TrendWatcher periodically rebuilds each subscriber's pressure curve and
// pushes an alert when it turns worrying. An alert fires at most once per
// chat until the condition clears.
type TrendWatcher struct {
	tracer       trace.Tracer
	curves       CurveSource
	summaries    CurveSummarizer
	notifier     PressureNotifier
	pollInterval time.Duration
	avgThreshold float64

	mu      sync.Mutex
	alerted map[int64]bool
}

func NewTrendWatcher(
	tracer trace.Tracer,
	curves CurveSource,
	summaries CurveSummarizer,
	notifier PressureNotifier,
	pollInterval time.Duration,
	avgThreshold float64,
) *TrendWatcher {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Minute
	}
	if avgThreshold <= 0 || avgThreshold > 1 {
		avgThreshold = 0.8
	}
	return &TrendWatcher{
		tracer:       tracer,
		curves:       curves,
		summaries:    summaries,
		notifier:     notifier,
		pollInterval: pollInterval,
		avgThreshold: avgThreshold,
		alerted:      make(map[int64]bool),
	}
}

// Start blocks until ctx is cancelled.
func (w *TrendWatcher) Start(ctx context.Context) {
	if w.curves == nil || w.notifier == nil {
		log.Println("Trend watcher disabled: missing curve source or notifier")
		<-ctx.Done()
		return
	}

	log.Println("Trend watcher starting...")
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Trend watcher stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs one pass over all subscribers.
func (w *TrendWatcher) Sweep(ctx context.Context) {
	ctx, span := w.tracer.Start(ctx, "trend-watcher.sweep")
	defer span.End()

	for _, chatID := range w.notifier.Subscribers() {
		w.checkSubscriber(ctx, chatID)
	}
}

func (w *TrendWatcher) checkSubscriber(ctx context.Context, chatID int64) {
	curve, err := w.curves.RecentCurve(ctx, strconv.FormatInt(chatID, 10))
	if err != nil {
		log.Printf("trend watcher curve error for chat %d: %v", chatID, err)
		return
	}

	summary := w.summaries.Summary(curve)
	worrying := summary.Trend == domain.TrendRising || summary.AverageStress >= w.avgThreshold

	w.mu.Lock()
	already := w.alerted[chatID]
	w.alerted[chatID] = worrying
	w.mu.Unlock()

	if !worrying || already {
		return
	}

	if err := w.notifier.NotifyPressure(ctx, chatID, summary); err != nil {
		log.Printf("trend watcher notify error for chat %d: %v", chatID, err)
		w.mu.Lock()
		w.alerted[chatID] = false
		w.mu.Unlock()
	}
}
