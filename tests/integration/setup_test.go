package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/boki/internal/adapter/http"
	"github.com/iho/boki/internal/adapter/http/handler"
	"github.com/iho/boki/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/boki/internal/adapter/repository/redis"
	infraredis "github.com/iho/boki/internal/infrastructure/redis"
	"github.com/iho/boki/internal/usecase"
	"github.com/iho/boki/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database.
// Redis is attached when reachable and skipped otherwise.
func newTestRouter(t *testing.T, ctx context.Context, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	pool := testDB.Pool

	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)

	var (
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
	)
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	if redisClient, err := infraredis.NewClient(ctx, redisURL); err == nil {
		t.Cleanup(func() { redisClient.Close() })
		cache = redisrepo.NewCache(redisClient)
		idempotencyStore = redisrepo.NewIdempotencyStore(redisClient)
	}

	accountUC := usecase.NewAccountUseCase(accountRepo, cache, time.Minute, nil)
	journalUC := usecase.NewJournalUseCase(txManager, accountRepo, transactionRepo, nil)
	summaryUC := usecase.NewSummaryUseCase(summaryRepo, nil)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		JournalHandler:   handler.NewJournalHandler(journalUC),
		TemplateHandler:  handler.NewTemplateHandler(journalUC),
		SummaryHandler:   handler.NewSummaryHandler(summaryUC),
		HealthHandler:    handler.NewHealthHandler(pool, nil),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   time.Minute,
		Logger:           zerolog.Nop(),
	})
}
