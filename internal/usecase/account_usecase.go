package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/infrastructure/metrics"
)

// AccountUseCase handles chart-of-accounts business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	cache       Cache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. cache and m may be
// nil.
func NewAccountUseCase(accountRepo AccountRepository, cache Cache, cacheTTL time.Duration, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		metrics:     m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name string
	Type domain.AccountType
}

// CreateAccount adds an account to the chart and returns it with its
// assigned identifier.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	account := &domain.Account{
		Name: input.Name,
		Type: input.Type,
	}

	id, err := uc.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	account.ID = id

	// The cached chart listing is stale now.
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, chartCacheKey)
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// FindByName retrieves an account by its unique name.
func (uc *AccountUseCase) FindByName(ctx context.Context, name string) (*domain.Account, error) {
	return uc.accountRepo.GetByName(ctx, name)
}

// ListAccounts returns the whole chart ordered by classification then
// insertion order. Accounts are immutable once created, so the cached
// listing can only be stale with respect to additions, which
// CreateAccount invalidates.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, chartCacheKey); err == nil && cached != "" {
			var accounts []*domain.Account
			if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
				if uc.metrics != nil {
					uc.metrics.CacheHits.Inc()
				}
				return accounts, nil
			}
		}
		if uc.metrics != nil {
			uc.metrics.CacheMisses.Inc()
		}
	}

	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(accounts); err == nil {
			_ = uc.cache.Set(ctx, chartCacheKey, string(encoded), uc.cacheTTL)
		}
	}

	return accounts, nil
}
