package usecase

import (
	"context"
	"time"

	"github.com/iho/boki/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (int32, error)
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	GetByNameTx(ctx context.Context, tx Transaction, name string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

// TransactionRepository defines data access for posted transactions.
// Header and detail inserts run inside a caller-held Transaction so
// one posting commits or rolls back as a unit.
type TransactionRepository interface {
	InsertHeader(ctx context.Context, tx Transaction, txn *domain.Transaction) (int32, error)
	InsertDetail(ctx context.Context, tx Transaction, transactionID, accountID int32, d *domain.TransactionDetail) error
	ByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error)
}

// SummaryRepository aggregates detail rows into per-account sums for
// one period scope. upto names the last lifecycle stage included.
type SummaryRepository interface {
	Aggregate(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
