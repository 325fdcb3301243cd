package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountAmount is one journal line: a named account and an amount,
// sided by which list it appears in.
type AccountAmount struct {
	Account string
	Amount  decimal.Decimal
}

// Journal is the caller-facing shape of a transaction: debit and
// credit lines listed separately, before account resolution.
type Journal struct {
	Date        time.Time
	Description string
	Debit       []AccountAmount
	Credit      []AccountAmount
	Type        TransactionType
}

// DetailSide recovers the single-sided view of a detail row. The
// schema permits a row carrying both amounts; nothing in this system
// writes one, but rows predating the write-path check net out here.
func DetailSide(d *TransactionDetail) (AmountSide, decimal.Decimal) {
	switch {
	case d.CreditAmount.IsZero():
		return Debit, d.DebitAmount
	case d.DebitAmount.IsZero():
		return Credit, d.CreditAmount
	case d.DebitAmount.GreaterThanOrEqual(d.CreditAmount):
		return Debit, d.DebitAmount.Sub(d.CreditAmount)
	default:
		return Credit, d.CreditAmount.Sub(d.DebitAmount)
	}
}

// JournalFromTransaction rebuilds the journal view of a posted
// transaction, splitting its details back into debit and credit
// lines in stored order.
func JournalFromTransaction(t *Transaction) *Journal {
	j := &Journal{
		Type:        t.Type,
		Date:        t.Date,
		Description: t.Description,
	}

	for i := range t.Details {
		d := &t.Details[i]
		side, amount := DetailSide(d)
		line := AccountAmount{Account: d.AccountName, Amount: amount}
		if side == Debit {
			j.Debit = append(j.Debit, line)
		} else {
			j.Credit = append(j.Credit, line)
		}
	}

	return j
}
