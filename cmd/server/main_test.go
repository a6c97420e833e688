package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"steady-compass/internal/bot"
	"steady-compass/internal/config"
	"steady-compass/internal/job"
	"steady-compass/internal/repository"
	"steady-compass/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := stubServerDeps()
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func TestHTTPAddrFromEnv(t *testing.T) {
	t.Setenv("PORT", "")
	if got := httpAddrFromEnv(); got != ":8080" {
		t.Fatalf("expected default :8080, got %s", got)
	}

	t.Setenv("PORT", "9090")
	if got := httpAddrFromEnv(); got != ":9090" {
		t.Fatalf("expected :9090, got %s", got)
	}

	t.Setenv("PORT", ":7070")
	if got := httpAddrFromEnv(); got != ":7070" {
		t.Fatalf("expected :7070, got %s", got)
	}
}

func TestPressureNotifierNilDispatcher(t *testing.T) {
	if pressureNotifier(nil) != nil {
		t.Fatal("expected nil interface for nil dispatcher")
	}
	if pressureNotifier(bot.NewAlertDispatcher(nil)) == nil {
		t.Fatal("expected non-nil interface for live dispatcher")
	}
}

func stubServerDeps() func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitPostgres := initPostgresFunc
	origInitRedis := initRedisFunc
	origInitTracer := initTracerFunc
	origNewCheckInRepo := newCheckInRepoFunc
	origNewWellness := newWellnessServiceFunc
	origStartTelegram := startTelegramBotFunc
	origNewTrendWatcher := newTrendWatcherFunc
	origStartTrendWatcher := startTrendWatcherFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{
			RedisURL:           "",
			DatabaseURL:        "",
			TrendWatchPollSecs: 1,
			ScoreCacheTTLSecs:  1,
			JournalWindowDays:  7,
			AlertAvgThreshold:  0.8,
		}
	}
	initPostgresFunc = func(context.Context) {}
	initRedisFunc = func(context.Context) {}
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newCheckInRepoFunc = func(repository.PgxPool, trace.Tracer) *repository.CheckInRepository {
		return nil
	}
	newWellnessServiceFunc = func(
		tracer trace.Tracer,
		_ service.CheckInRepository,
		_ *redis.Client,
		_ time.Duration,
		_ int,
		_ func() time.Time,
	) *service.WellnessService {
		return service.NewWellnessService(tracer, nil, nil, 0, 0, nil)
	}
	startTelegramBotFunc = func(bot.WellnessQuerier) *bot.AlertDispatcher { return nil }
	newTrendWatcherFunc = func(
		trace.Tracer, job.CurveSource, job.CurveSummarizer, job.PressureNotifier, time.Duration, float64,
	) *job.TrendWatcher {
		return nil
	}
	startTrendWatcherFunc = func(*job.TrendWatcher, context.Context) {}
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) {}
	startHTTPServerFunc = func(*http.Server) error { return http.ErrServerClosed }
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initPostgresFunc = origInitPostgres
		initRedisFunc = origInitRedis
		initTracerFunc = origInitTracer
		newCheckInRepoFunc = origNewCheckInRepo
		newWellnessServiceFunc = origNewWellness
		startTelegramBotFunc = origStartTelegram
		newTrendWatcherFunc = origNewTrendWatcher
		startTrendWatcherFunc = origStartTrendWatcher
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	}
}
