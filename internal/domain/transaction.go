package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is one stage of the accounting period lifecycle.
// The declaration order is chronological and load-bearing: it is the
// sort key for journal listings and the basis of the cascading
// summary scopes.
type TransactionType int

const (
	FromPrev TransactionType = iota
	InTerm
	Kessan
	Soneki
	ToNext
)

var transactionTypeNames = [...]string{
	FromPrev: "FromPrev",
	InTerm:   "InTerm",
	Kessan:   "Kessan",
	Soneki:   "Soneki",
	ToNext:   "ToNext",
}

var transactionTypeJapanese = [...]string{
	FromPrev: "前期繰越",
	InTerm:   "期中仕訳",
	Kessan:   "決算仕訳",
	Soneki:   "損益計算",
	ToNext:   "次期繰越",
}

func (t TransactionType) String() string {
	if t < FromPrev || t > ToNext {
		return transactionTypeNames[InTerm]
	}
	return transactionTypeNames[t]
}

// Japanese returns the bookkeeping term for the stage.
func (t TransactionType) Japanese() string {
	if t < FromPrev || t > ToNext {
		return transactionTypeJapanese[InTerm]
	}
	return transactionTypeJapanese[t]
}

// ParseTransactionType accepts the English enum name or its Japanese
// alias. Unknown tags fall back to InTerm.
func ParseTransactionType(s string) TransactionType {
	for t, name := range transactionTypeNames {
		if s == name {
			return TransactionType(t)
		}
	}
	switch s {
	case "前期繰越", "前期":
		return FromPrev
	case "期中仕訳", "期中", "仕訳":
		return InTerm
	case "決算仕訳", "決算":
		return Kessan
	case "損益計算", "損益":
		return Soneki
	case "次期繰越", "次期":
		return ToNext
	}
	return InTerm
}

// TransactionDetail is one line of a posted transaction. The account
// name and classification are denormalized for read convenience; the
// store persists the resolved account identifier.
type TransactionDetail struct {
	AccountName  string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
	AccountType  AccountType
}

// Transaction is a balanced set of detail lines posted on one date.
// The identifier is assigned by the store at posting time and the
// transaction is immutable thereafter.
type Transaction struct {
	Date        time.Time
	Description string
	Details     []TransactionDetail
	ID          int32
	Type        TransactionType
}

// Validate checks the posting invariants: every amount non-negative,
// at most one side of each line nonzero, and debit and credit totals
// equal across all lines.
func (t *Transaction) Validate() error {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i := range t.Details {
		d := &t.Details[i]
		if d.DebitAmount.IsNegative() || d.CreditAmount.IsNegative() {
			return ErrInvalidAmount
		}
		if !d.DebitAmount.IsZero() && !d.CreditAmount.IsZero() {
			return ErrInvalidAmount
		}
		totalDebit = totalDebit.Add(d.DebitAmount)
		totalCredit = totalCredit.Add(d.CreditAmount)
	}

	if !totalDebit.Equal(totalCredit) {
		return ErrUnbalancedTransaction
	}

	return nil
}

// DebitTotal sums the debit side. For a valid transaction this equals
// the credit total.
func (t *Transaction) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range t.Details {
		total = total.Add(t.Details[i].DebitAmount)
	}
	return total
}
