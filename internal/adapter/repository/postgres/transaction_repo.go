package postgres

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

const (
	// -- name: InsertTransaction :one
	insertTransactionSQL = `
INSERT INTO transactions (transaction_date, transaction_type, description)
VALUES ($1, $2, $3)
RETURNING transaction_id`

	// -- name: InsertTransactionDetail :exec
	insertTransactionDetailSQL = `
INSERT INTO transaction_details (transaction_id, account_id, debit_amount, credit_amount)
VALUES ($1, $2, $3, $4)`

	// The detail-level ordering (amounts descending, then insertion
	// order) comes from this query; the transaction-level ordering is
	// redone in Go because transaction_type is stored as text.
	// -- name: TransactionsByMonth :many
	transactionsByMonthSQL = `
SELECT
    t.transaction_id,
    t.transaction_date,
    t.transaction_type,
    t.description,
    a.account_name,
    a.account_type,
    td.debit_amount,
    td.credit_amount
FROM transactions t
    LEFT OUTER JOIN transaction_details td
    ON t.transaction_id = td.transaction_id
    LEFT OUTER JOIN accounts a
    ON td.account_id = a.account_id
WHERE
    t.transaction_date >= $1
    AND t.transaction_date < $2
ORDER BY
    t.transaction_date ASC,
    t.transaction_type ASC,
    t.transaction_id ASC,
    td.debit_amount DESC,
    td.credit_amount DESC,
    td.transaction_detail_id ASC`
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// InsertHeader inserts the transaction row and returns its assigned id.
func (r *TransactionRepository) InsertHeader(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) (int32, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var id int32
	err := pgxTx.QueryRow(ctx, insertTransactionSQL,
		timeToPgDate(txn.Date), txn.Type.String(), txn.Description,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// InsertDetail inserts one detail row bound to a transaction and a
// resolved account.
func (r *TransactionRepository) InsertDetail(ctx context.Context, tx usecase.Transaction, transactionID, accountID int32, d *domain.TransactionDetail) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertTransactionDetailSQL,
		transactionID, accountID,
		decimalToNumeric(d.DebitAmount), decimalToNumeric(d.CreditAmount),
	)

	return err
}

// ByMonth returns the transactions dated within a calendar month,
// details grouped under their header. A header with no detail rows is
// returned with an empty detail list.
func (r *TransactionRepository) ByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := r.pool.Query(ctx, transactionsByMonthSQL, timeToPgDate(start), timeToPgDate(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int32]*domain.Transaction)
	var ordered []*domain.Transaction

	for rows.Next() {
		var row transactionDetailRow
		if err := rows.Scan(
			&row.transactionID,
			&row.transactionDate,
			&row.transactionType,
			&row.description,
			&row.accountName,
			&row.accountType,
			&row.debitAmount,
			&row.creditAmount,
		); err != nil {
			return nil, err
		}

		txn, ok := byID[row.transactionID]
		if !ok {
			txn = &domain.Transaction{
				ID:          row.transactionID,
				Date:        row.transactionDate.Time,
				Type:        domain.ParseTransactionType(row.transactionType),
				Description: row.description,
			}
			byID[row.transactionID] = txn
			ordered = append(ordered, txn)
		}

		// A header with no detail rows joins to NULL columns; it stays
		// in the result with an empty detail list.
		if !row.accountName.Valid {
			continue
		}

		txn.Details = append(txn.Details, domain.TransactionDetail{
			AccountName:  row.accountName.String,
			AccountType:  domain.ParseAccountType(row.accountTypeName()),
			DebitAmount:  numericToDecimal(row.debitAmount),
			CreditAmount: numericToDecimal(row.creditAmount),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortTransactions(ordered)

	return ordered, nil
}

type transactionDetailRow struct {
	transactionID   int32
	transactionDate pgtype.Date
	transactionType string
	description     string
	accountName     pgtype.Text
	accountType     pgtype.Text
	debitAmount     pgtype.Numeric
	creditAmount    pgtype.Numeric
}

func (r transactionDetailRow) accountTypeName() string {
	if r.accountType.Valid {
		return r.accountType.String
	}
	return ""
}

func sortTransactions(txns []*domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		if txns[i].Type != txns[j].Type {
			return txns[i].Type < txns[j].Type
		}
		return txns[i].ID < txns[j].ID
	})
}
