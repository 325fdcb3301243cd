package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/domain"
)

func TestSummaryNormalized(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		debit       int64
		credit      int64
		wantDebit   int64
		wantCredit  int64
	}{
		{"asset nets to debit", domain.Asset, 1500, 500, 1000, 0},
		{"expense nets to debit", domain.Expense, 300, 0, 300, 0},
		{"liability nets to credit", domain.Liability, 200, 900, 0, 700},
		{"income nets to credit", domain.Income, 0, 4000, 0, 4000},
		{"equity nets to credit", domain.Equity, 100, 100, 0, 0},
		{"overdrawn asset goes negative on debit side", domain.Asset, 100, 400, -300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Summary{
				AccountID:   1,
				AccountName: "口座",
				AccountType: tt.accountType,
				Debit:       decimal.NewFromInt(tt.debit),
				Credit:      decimal.NewFromInt(tt.credit),
			}
			got := s.Normalized()
			if !got.Debit.Equal(decimal.NewFromInt(tt.wantDebit)) {
				t.Errorf("debit = %s, want %d", got.Debit, tt.wantDebit)
			}
			if !got.Credit.Equal(decimal.NewFromInt(tt.wantCredit)) {
				t.Errorf("credit = %s, want %d", got.Credit, tt.wantCredit)
			}
		})
	}
}
