package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/boki/internal/domain"
)

func TestDetailSide(t *testing.T) {
	tests := []struct {
		name       string
		debit      int64
		credit     int64
		wantSide   domain.AmountSide
		wantAmount int64
	}{
		{"credit zero means debit line", 500, 0, domain.Debit, 500},
		{"debit zero means credit line", 0, 300, domain.Credit, 300},
		{"zero zero reads as zero debit", 0, 0, domain.Debit, 0},
		{"both set, debit larger nets to debit", 800, 300, domain.Debit, 500},
		{"both set, equal nets to zero debit", 400, 400, domain.Debit, 0},
		{"both set, credit larger nets to credit", 100, 600, domain.Credit, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.TransactionDetail{
				AccountName:  "普通預金",
				AccountType:  domain.Asset,
				DebitAmount:  decimal.NewFromInt(tt.debit),
				CreditAmount: decimal.NewFromInt(tt.credit),
			}
			side, amount := domain.DetailSide(&d)
			if side != tt.wantSide {
				t.Errorf("side = %v, want %v", side, tt.wantSide)
			}
			if !amount.Equal(decimal.NewFromInt(tt.wantAmount)) {
				t.Errorf("amount = %s, want %d", amount, tt.wantAmount)
			}
		})
	}
}

func TestJournalFromTransaction(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	txn := &domain.Transaction{
		ID:          7,
		Date:        date,
		Type:        domain.InTerm,
		Description: "消耗品の購入",
		Details: []domain.TransactionDetail{
			detail("消耗品費", 900, 0),
			detail("仮払消費税", 100, 0),
			detail("事業主借", 0, 1000),
		},
	}

	j := domain.JournalFromTransaction(txn)

	require.Equal(t, domain.InTerm, j.Type)
	require.Equal(t, date, j.Date)
	require.Equal(t, "消耗品の購入", j.Description)

	require.Len(t, j.Debit, 2)
	require.Equal(t, "消耗品費", j.Debit[0].Account)
	require.True(t, j.Debit[0].Amount.Equal(decimal.NewFromInt(900)))
	require.Equal(t, "仮払消費税", j.Debit[1].Account)

	require.Len(t, j.Credit, 1)
	require.Equal(t, "事業主借", j.Credit[0].Account)
	require.True(t, j.Credit[0].Amount.Equal(decimal.NewFromInt(1000)))
}

// A transaction whose lines are all single-sided must reproduce its
// journal exactly; the netting rule only fires on legacy two-sided
// rows.
func TestJournalRoundTripExactForSingleSidedRows(t *testing.T) {
	txn := &domain.Transaction{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Type: domain.Kessan,
		Details: []domain.TransactionDetail{
			detail("未収金", 2500, 0),
			detail("売掛金", 0, 2500),
		},
	}

	j := domain.JournalFromTransaction(txn)
	require.Len(t, j.Debit, 1)
	require.Len(t, j.Credit, 1)
	require.Equal(t, "未収金", j.Debit[0].Account)
	require.True(t, j.Debit[0].Amount.Equal(decimal.NewFromInt(2500)))
	require.Equal(t, "売掛金", j.Credit[0].Account)
	require.True(t, j.Credit[0].Amount.Equal(decimal.NewFromInt(2500)))
}
