package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/infrastructure/metrics"
)

// SummaryUseCase computes period-scoped trial balances. Each scope is
// one aggregate query over persisted detail rows, normalized per
// account against its natural side.
type SummaryUseCase struct {
	summaryRepo SummaryRepository
	metrics     *metrics.Metrics
}

// NewSummaryUseCase creates a new SummaryUseCase. m may be nil.
func NewSummaryUseCase(summaryRepo SummaryRepository, m *metrics.Metrics) *SummaryUseCase {
	return &SummaryUseCase{summaryRepo: summaryRepo, metrics: m}
}

// YearPeriod returns the [Jan 1, Dec 31] range for a year.
func YearPeriod(year int) (time.Time, time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, fmt.Errorf("year %d: %w", year, domain.ErrInvalidPeriod)
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// MonthPeriod returns the [first, last] day range for a month.
func MonthPeriod(year, month int) (time.Time, time.Time, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%d-%d: %w", year, month, domain.ErrInvalidPeriod)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// FromPrev aggregates only the opening balances carried in on the
// period's first day.
func (uc *SummaryUseCase) FromPrev(ctx context.Context, start time.Time) ([]*domain.Summary, error) {
	return uc.aggregate(ctx, start, start, domain.FromPrev)
}

// InTerm adds ordinary postings across the whole period.
func (uc *SummaryUseCase) InTerm(ctx context.Context, start, end time.Time) ([]*domain.Summary, error) {
	return uc.aggregate(ctx, start, end, domain.InTerm)
}

// Kessan adds closing adjustments dated on the period's last day.
func (uc *SummaryUseCase) Kessan(ctx context.Context, start, end time.Time) ([]*domain.Summary, error) {
	return uc.aggregate(ctx, start, end, domain.Kessan)
}

// Soneki adds profit-and-loss clearing entries on the last day.
func (uc *SummaryUseCase) Soneki(ctx context.Context, start, end time.Time) ([]*domain.Summary, error) {
	return uc.aggregate(ctx, start, end, domain.Soneki)
}

// ToNext adds the carry-forward entries on the last day, completing
// the period lifecycle.
func (uc *SummaryUseCase) ToNext(ctx context.Context, start, end time.Time) ([]*domain.Summary, error) {
	return uc.aggregate(ctx, start, end, domain.ToNext)
}

// ByScope dispatches on the lifecycle stage. Handlers route scope
// names here rather than binding five endpoints to five methods.
func (uc *SummaryUseCase) ByScope(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
	if upto == domain.FromPrev {
		return uc.FromPrev(ctx, start)
	}
	return uc.aggregate(ctx, start, end, upto)
}

func (uc *SummaryUseCase) aggregate(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
	if uc.metrics != nil {
		uc.metrics.SummaryQueries.WithLabelValues(upto.String()).Inc()
	}

	rows, err := uc.summaryRepo.Aggregate(ctx, start, end, upto)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.Summary{}, nil
		}
		return nil, err
	}

	out := make([]*domain.Summary, 0, len(rows))
	for _, row := range rows {
		normalized := row.Normalized()
		out = append(out, &normalized)
	}

	return out, nil
}
