package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	nextID   int32

	CreateFunc      func(ctx context.Context, account *domain.Account) (int32, error)
	GetByNameFunc   func(ctx context.Context, name string) (*domain.Account, error)
	GetByNameTxFunc func(ctx context.Context, tx usecase.Transaction, name string) (*domain.Account, error)
	ListFunc        func(ctx context.Context) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed registers an account in the backing map, assigning the next id.
func (m *MockAccountRepository) Seed(name string, accountType domain.AccountType) *domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	acc := &domain.Account{ID: m.nextID, Name: name, Type: accountType}
	m.accounts[name] = acc
	return acc
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) (int32, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Name]; ok {
		return 0, domain.ErrDuplicateAccountName
	}
	m.nextID++
	stored := *account
	stored.ID = m.nextID
	m.accounts[account.Name] = &stored
	return stored.ID, nil
}

func (m *MockAccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[name]; ok {
		return acc, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockAccountRepository) GetByNameTx(ctx context.Context, tx usecase.Transaction, name string) (*domain.Account, error) {
	if m.GetByNameTxFunc != nil {
		return m.GetByNameTxFunc(ctx, tx, name)
	}
	return m.GetByName(ctx, name)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.Mutex
	nextID  int32
	Headers []*domain.Transaction
	Details []MockDetailInsert

	InsertHeaderFunc func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) (int32, error)
	InsertDetailFunc func(ctx context.Context, tx usecase.Transaction, transactionID, accountID int32, d *domain.TransactionDetail) error
	ByMonthFunc      func(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error)
}

// MockDetailInsert records one InsertDetail call.
type MockDetailInsert struct {
	TransactionID int32
	AccountID     int32
	Detail        domain.TransactionDetail
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) InsertHeader(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) (int32, error) {
	if m.InsertHeaderFunc != nil {
		return m.InsertHeaderFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.Headers = append(m.Headers, txn)
	return m.nextID, nil
}

func (m *MockTransactionRepository) InsertDetail(ctx context.Context, tx usecase.Transaction, transactionID, accountID int32, d *domain.TransactionDetail) error {
	if m.InsertDetailFunc != nil {
		return m.InsertDetailFunc(ctx, tx, transactionID, accountID, d)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Details = append(m.Details, MockDetailInsert{
		TransactionID: transactionID,
		AccountID:     accountID,
		Detail:        *d,
	})
	return nil
}

func (m *MockTransactionRepository) ByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error) {
	if m.ByMonthFunc != nil {
		return m.ByMonthFunc(ctx, year, month)
	}
	return nil, domain.ErrNotFound
}

// MockTransaction is a mock database transaction that records its
// outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	Last *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.Last = &MockTransaction{}
	return m.Last, nil
}

// MockCache is an in-memory mock of Cache.
type MockCache struct {
	mu      sync.RWMutex
	values  map[string]string
	Deletes []string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", domain.ErrNotFound
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.Deletes = append(m.Deletes, key)
	return nil
}
