package postgres

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/boki/internal/domain"
)

// One query serves every lifecycle scope. $3 switches the in-term
// clause on, $4 carries the closing stages admitted on the period's
// last day (empty below Kessan).
// -- name: AggregateSummary :many
const aggregateSummarySQL = `
SELECT
    a.account_id,
    a.account_name,
    a.account_type,
    SUM(td.debit_amount) AS debit,
    SUM(td.credit_amount) AS credit
FROM transactions t
    LEFT OUTER JOIN transaction_details td
    ON t.transaction_id = td.transaction_id
    LEFT OUTER JOIN accounts a
    ON td.account_id = a.account_id
WHERE
    (t.transaction_date = $1
    AND t.transaction_type = 'FromPrev')
    OR ($3
    AND t.transaction_date >= $1
    AND t.transaction_date <= $2
    AND t.transaction_type = 'InTerm')
    OR (t.transaction_date = $2
    AND t.transaction_type = ANY($4))
GROUP BY
    a.account_id, a.account_name, a.account_type
ORDER BY
    a.account_type ASC, a.account_id ASC`

// SummaryRepository implements usecase.SummaryRepository.
type SummaryRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSummaryRepository creates a new SummaryRepository.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepository {
	return &SummaryRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Aggregate sums debit and credit per account over the period,
// admitting transaction stages up to and including upto. Reads are
// retried on transient errors; they hold no transaction state.
func (r *SummaryRepository) Aggregate(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
	includeInTerm := upto >= domain.InTerm
	boundary := boundaryTypes(upto)

	var summaries []*domain.Summary
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, aggregateSummarySQL,
			timeToPgDate(start), timeToPgDate(end), includeInTerm, boundary,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		summaries = summaries[:0]
		for rows.Next() {
			var (
				id       pgtype.Int4
				name     pgtype.Text
				typeName pgtype.Text
				debit    pgtype.Numeric
				credit   pgtype.Numeric
			)
			if err := rows.Scan(&id, &name, &typeName, &debit, &credit); err != nil {
				return err
			}

			if !name.Valid {
				continue
			}

			summaries = append(summaries, &domain.Summary{
				AccountID:   id.Int32,
				AccountName: name.String,
				AccountType: domain.ParseAccountType(typeName.String),
				Debit:       numericToDecimal(debit),
				Credit:      numericToDecimal(credit),
			})
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	sortSummaries(summaries)

	return summaries, nil
}

// boundaryTypes lists the closing stages whose last-day entries the
// scope admits. Below Kessan the last day carries nothing extra.
func boundaryTypes(upto domain.TransactionType) []string {
	types := []string{}
	for _, t := range []domain.TransactionType{domain.Kessan, domain.Soneki, domain.ToNext} {
		if upto >= t {
			types = append(types, t.String())
		}
	}
	return types
}

func sortSummaries(summaries []*domain.Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].AccountType != summaries[j].AccountType {
			return summaries[i].AccountType < summaries[j].AccountType
		}
		return summaries[i].AccountID < summaries[j].AccountID
	})
}
