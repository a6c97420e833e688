package main

import (
	"context"
	"log"
	"net/http"
	"os"
	ossignal "os/signal"
	"strings"
	"syscall"
	"time"

	"steady-compass/internal/analysis"
	"steady-compass/internal/bot"
	"steady-compass/internal/cache"
	"steady-compass/internal/config"
	"steady-compass/internal/curve"
	"steady-compass/internal/db"
	"steady-compass/internal/handler"
	"steady-compass/internal/job"
	"steady-compass/internal/repository"
	"steady-compass/internal/service"
	"steady-compass/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "steady-compass/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initPostgresFunc       = db.InitPostgres
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	newCheckInRepoFunc     = repository.NewCheckInRepository
	newWellnessServiceFunc = service.NewWellnessService
	startTelegramBotFunc   = bot.StartTelegramBot
	newTrendWatcherFunc    = job.NewTrendWatcher
	startTrendWatcherFunc  = func(w *job.TrendWatcher, ctx context.Context) { go w.Start(ctx) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = ossignal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Steady Compass API
// @version         1.0
// @description     A resilience and sentiment analysis service with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	os.Setenv("DATABASE_URL", cfg.DatabaseURL)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initPostgresFunc(ctx)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create repository and run migrations
	checkInRepo := newCheckInRepoFunc(db.Pool, tracer)
	if db.Pool != nil {
		if err := checkInRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Create the wellness service
	wellness := newWellnessServiceFunc(
		tracer,
		checkInRepo,
		cache.Client,
		time.Duration(cfg.ScoreCacheTTLSecs)*time.Second,
		cfg.JournalWindowDays,
		nil,
	)

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	dispatcher := startTelegramBotFunc(wellness)

	// Start the trend watcher (stopped by ctx cancel)
	summaries := curve.NewGenerator(analysis.NewEmotionAnalyzer(nil), nil)
	watcher := newTrendWatcherFunc(
		tracer,
		wellness,
		summaries,
		pressureNotifier(dispatcher),
		time.Duration(cfg.TrendWatchPollSecs)*time.Second,
		cfg.AlertAvgThreshold,
	)
	startTrendWatcherFunc(watcher, ctx)

	// Create handlers and routes
	h := newHandlerFunc(tracer, wellness)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("steady-compass"))
	r.Use(cors.Default())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    httpAddrFromEnv(),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

// pressureNotifier avoids handing the watcher a typed-nil interface when the
// bot never started.
func pressureNotifier(d *bot.AlertDispatcher) job.PressureNotifier {
	if d == nil {
		return nil
	}
	return d
}

func httpAddrFromEnv() string {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
