package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/boki/internal/adapter/http"
	"github.com/iho/boki/internal/adapter/http/handler"
	"github.com/iho/boki/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/boki/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/boki/internal/adapter/repository/redis"
	"github.com/iho/boki/internal/infrastructure/config"
	"github.com/iho/boki/internal/infrastructure/logging"
	"github.com/iho/boki/internal/infrastructure/metrics"
	"github.com/iho/boki/internal/infrastructure/postgres"
	"github.com/iho/boki/internal/infrastructure/redis"
	"github.com/iho/boki/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Packages built on log/slog (migrations, retrier) follow the
	// same level and format.
	slog.SetDefault(logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat).Logger)

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis. The service degrades to uncached reads and
	// non-idempotent posting when no Redis is reachable.
	var (
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
	)
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		cache = redisRepo.NewCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	summaryRepo := postgresRepo.NewSummaryRepository(pool)

	// Initialize use cases
	domainMetrics := metrics.New()
	accountUC := usecase.NewAccountUseCase(accountRepo, cache, cfg.ChartCacheTTL, domainMetrics)
	journalUC := usecase.NewJournalUseCase(txManager, accountRepo, transactionRepo, domainMetrics)
	summaryUC := usecase.NewSummaryUseCase(summaryRepo, domainMetrics)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	journalHandler := handler.NewJournalHandler(journalUC)
	templateHandler := handler.NewTemplateHandler(journalUC)
	summaryHandler := handler.NewSummaryHandler(summaryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		JournalHandler:   journalHandler,
		TemplateHandler:  templateHandler,
		SummaryHandler:   summaryHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Logger:           log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
