package postgres

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

const pgErrUniqueViolation = "23505"

const (
	// -- name: CreateAccount :one
	createAccountSQL = `
INSERT INTO accounts (account_name, account_type)
VALUES ($1, $2)
RETURNING account_id`

	// -- name: GetAccountByName :one
	getAccountByNameSQL = `
SELECT account_id, account_name, account_type
FROM accounts
WHERE account_name = $1`

	// -- name: ListAccounts :many
	listAccountsSQL = `
SELECT account_id, account_name, account_type
FROM accounts
ORDER BY account_type ASC, account_id ASC`
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts a new account and returns its assigned id.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (int32, error) {
	var id int32
	err := r.pool.QueryRow(ctx, createAccountSQL,
		account.Name, account.Type.String(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return 0, domain.ErrDuplicateAccountName
		}

		return 0, err
	}

	return id, nil
}

// GetByName retrieves an account by its unique name.
func (r *AccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, getAccountByNameSQL, name))
}

// GetByNameTx retrieves an account by name inside an open transaction.
func (r *AccountRepository) GetByNameTx(ctx context.Context, tx usecase.Transaction, name string) (*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	return scanAccount(pgxTx.QueryRow(ctx, getAccountByNameSQL, name))
}

// List returns the whole chart ordered by classification then id. The
// database stores the classification as text, so the rows are
// re-sorted here by enum rank to keep the lifecycle ordering.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, listAccountsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var (
			id       int32
			name     string
			typeName string
		)
		if err := rows.Scan(&id, &name, &typeName); err != nil {
			return nil, err
		}
		accounts = append(accounts, &domain.Account{
			ID:   id,
			Name: name,
			Type: domain.ParseAccountType(typeName),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortAccounts(accounts)

	return accounts, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		id       int32
		name     string
		typeName string
	)
	if err := row.Scan(&id, &name, &typeName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &domain.Account{
		ID:   id,
		Name: name,
		Type: domain.ParseAccountType(typeName),
	}, nil
}

func sortAccounts(accounts []*domain.Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].Type != accounts[j].Type {
			return accounts[i].Type < accounts[j].Type
		}
		return accounts[i].ID < accounts[j].ID
	})
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}
