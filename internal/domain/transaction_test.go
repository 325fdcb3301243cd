package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/domain"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.TransactionType
	}{
		{"english from prev", "FromPrev", domain.FromPrev},
		{"english to next", "ToNext", domain.ToNext},
		{"japanese from prev", "前期繰越", domain.FromPrev},
		{"japanese from prev short", "前期", domain.FromPrev},
		{"japanese in term", "期中仕訳", domain.InTerm},
		{"japanese journal entry alias", "仕訳", domain.InTerm},
		{"japanese kessan", "決算", domain.Kessan},
		{"japanese soneki", "損益", domain.Soneki},
		{"japanese to next", "次期繰越", domain.ToNext},
		{"unknown falls back to in term", "nonsense", domain.InTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.ParseTransactionType(tt.input); got != tt.want {
				t.Errorf("ParseTransactionType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransactionTypeLifecycleOrder(t *testing.T) {
	ordered := []domain.TransactionType{
		domain.FromPrev, domain.InTerm, domain.Kessan, domain.Soneki, domain.ToNext,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func detail(name string, debit, credit int64) domain.TransactionDetail {
	return domain.TransactionDetail{
		AccountName:  name,
		AccountType:  domain.Asset,
		DebitAmount:  decimal.NewFromInt(debit),
		CreditAmount: decimal.NewFromInt(credit),
	}
}

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		details []domain.TransactionDetail
		wantErr error
	}{
		{
			name: "balanced two lines",
			details: []domain.TransactionDetail{
				detail("普通預金", 1000, 0),
				detail("事業主借", 0, 1000),
			},
		},
		{
			name: "balanced multi line",
			details: []domain.TransactionDetail{
				detail("消耗品費", 900, 0),
				detail("仮払消費税", 100, 0),
				detail("事業主借", 0, 1000),
			},
		},
		{
			name:    "empty details balance trivially",
			details: nil,
		},
		{
			name: "unbalanced",
			details: []domain.TransactionDetail{
				detail("普通預金", 1000, 0),
				detail("事業主借", 0, 900),
			},
			wantErr: domain.ErrUnbalancedTransaction,
		},
		{
			name: "negative amount",
			details: []domain.TransactionDetail{
				detail("普通預金", -100, 0),
				detail("事業主借", 0, -100),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "both sides set on one line",
			details: []domain.TransactionDetail{
				detail("普通預金", 100, 100),
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := &domain.Transaction{
				Date:    date,
				Type:    domain.InTerm,
				Details: tt.details,
			}
			err := txn.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
