package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/infrastructure/metrics"
)

// JournalUseCase translates journals to transactions and back, and
// owns the atomic posting path.
type JournalUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	metrics         *metrics.Metrics
}

// NewJournalUseCase creates a new JournalUseCase. metrics may be nil.
func NewJournalUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	m *metrics.Metrics,
) *JournalUseCase {
	return &JournalUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		metrics:         m,
	}
}

// ToTransaction resolves every journal line against the chart of
// accounts and emits a normalized transaction. Pure translation: no
// persistence happens here, and any unresolvable account aborts the
// whole conversion.
func (uc *JournalUseCase) ToTransaction(ctx context.Context, j *domain.Journal) (*domain.Transaction, error) {
	txn := &domain.Transaction{
		Date:        j.Date,
		Type:        j.Type,
		Description: j.Description,
		Details:     make([]domain.TransactionDetail, 0, len(j.Debit)+len(j.Credit)),
	}

	for _, line := range j.Debit {
		d, err := uc.resolveLine(ctx, line, domain.Debit)
		if err != nil {
			return nil, err
		}
		txn.Details = append(txn.Details, d)
	}
	for _, line := range j.Credit {
		d, err := uc.resolveLine(ctx, line, domain.Credit)
		if err != nil {
			return nil, err
		}
		txn.Details = append(txn.Details, d)
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	return txn, nil
}

func (uc *JournalUseCase) resolveLine(ctx context.Context, line domain.AccountAmount, side domain.AmountSide) (domain.TransactionDetail, error) {
	account, err := uc.accountRepo.GetByName(ctx, line.Account)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TransactionDetail{}, fmt.Errorf("account %q: %w", line.Account, domain.ErrAccountNotFound)
		}
		return domain.TransactionDetail{}, err
	}

	d := domain.TransactionDetail{
		AccountName:  line.Account,
		AccountType:  account.Type,
		DebitAmount:  decimal.Zero,
		CreditAmount: decimal.Zero,
	}
	if side == domain.Debit {
		d.DebitAmount = line.Amount
	} else {
		d.CreditAmount = line.Amount
	}

	return d, nil
}

// Post persists a transaction atomically: the header insert, the
// per-detail account resolution, and every detail insert share one
// database transaction, so a failure on any line leaves zero new
// rows. Returns the assigned transaction identifier.
func (uc *JournalUseCase) Post(ctx context.Context, txn *domain.Transaction) (int32, error) {
	start := time.Now()

	id, err := uc.post(ctx, txn)
	if err != nil {
		uc.countError(err)
		return 0, err
	}

	if uc.metrics != nil {
		uc.metrics.JournalsPosted.Inc()
		uc.metrics.PostingDuration.Observe(time.Since(start).Seconds())
		uc.metrics.JournalAmount.Observe(txn.DebitTotal().InexactFloat64())
	}

	return id, nil
}

func (uc *JournalUseCase) post(ctx context.Context, txn *domain.Transaction) (int32, error) {
	if err := txn.Validate(); err != nil {
		return 0, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	id, err := uc.transactionRepo.InsertHeader(ctx, tx, txn)
	if err != nil {
		return 0, err
	}

	for i := range txn.Details {
		d := &txn.Details[i]

		account, err := uc.accountRepo.GetByNameTx(ctx, tx, d.AccountName)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return 0, fmt.Errorf("account %q: %w", d.AccountName, domain.ErrAccountNotFound)
			}
			return 0, err
		}

		if err := uc.transactionRepo.InsertDetail(ctx, tx, id, account.ID, d); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

func (uc *JournalUseCase) countError(err error) {
	if uc.metrics == nil {
		return
	}

	errorType := "internal"
	switch {
	case errors.Is(err, domain.ErrUnbalancedTransaction):
		errorType = "unbalanced"
	case errors.Is(err, domain.ErrAccountNotFound):
		errorType = "account_not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		errorType = "invalid_amount"
	}

	uc.metrics.JournalErrors.WithLabelValues(errorType).Inc()
}

// PostJournal translates and posts in one step.
func (uc *JournalUseCase) PostJournal(ctx context.Context, j *domain.Journal) (int32, error) {
	txn, err := uc.ToTransaction(ctx, j)
	if err != nil {
		return 0, err
	}
	return uc.Post(ctx, txn)
}

// JournalsByMonth returns the month's transactions rendered as
// journals, in posting order. A month with no postings is an empty
// slice, not an error.
func (uc *JournalUseCase) JournalsByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Journal, error) {
	txns, err := uc.transactionRepo.ByMonth(ctx, year, month)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.Journal{}, nil
		}
		return nil, err
	}

	journals := make([]*domain.Journal, 0, len(txns))
	for _, txn := range txns {
		journals = append(journals, domain.JournalFromTransaction(txn))
	}

	return journals, nil
}
