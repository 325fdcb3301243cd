package domain

import "github.com/shopspring/decimal"

// Summary is the per-account trial-balance row for a period scope.
// Debit and Credit start as raw column sums from the aggregate query;
// Normalized nets them against the account's natural side.
type Summary struct {
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	AccountID   int32
	AccountType AccountType
}

// Normalized nets opposite-side postings against the account's
// natural side: a Debit-natured account reports debit-credit with a
// zero credit column, and symmetrically for Credit-natured accounts.
func (s *Summary) Normalized() Summary {
	out := Summary{
		AccountID:   s.AccountID,
		AccountName: s.AccountName,
		AccountType: s.AccountType,
	}
	switch s.AccountType.Side() {
	case Debit:
		out.Debit = s.Debit.Sub(s.Credit)
		out.Credit = decimal.Zero
	case Credit:
		out.Debit = decimal.Zero
		out.Credit = s.Credit.Sub(s.Debit)
	}
	return out
}
