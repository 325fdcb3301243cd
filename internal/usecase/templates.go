package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/domain"
)

// Journal templates: each builder pre-fills the journal for a common
// transaction shape so callers supply only the variable parts. The
// builders are pure; the result still goes through the translator and
// the posting path like any hand-written journal.

// PurchaseCounterpart selects the credit account for a purchase.
type PurchaseCounterpart int

const (
	PurchaseByOwner PurchaseCounterpart = iota
	PurchaseByBank
	PurchaseByPayable
	PurchaseByPrepaid
)

func (c PurchaseCounterpart) account() string {
	switch c {
	case PurchaseByBank:
		return accountBank
	case PurchaseByPayable:
		return accountPayable
	case PurchaseByPrepaid:
		return accountPrepaid
	default:
		return accountOwnerCredit
	}
}

// PurchaseJournal debits the expense account (splitting out paid
// consumption tax when given) and credits the counterpart for the
// full total.
func PurchaseJournal(date time.Time, account string, total decimal.Decimal, tax *decimal.Decimal, desc string, counterpart PurchaseCounterpart) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.InTerm,
		Date:        date,
		Description: desc,
	}

	net := total
	if tax != nil {
		net = total.Sub(*tax)
	}
	j.Debit = append(j.Debit, domain.AccountAmount{Account: account, Amount: net})
	if tax != nil {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: accountTaxPaid, Amount: *tax})
	}
	j.Credit = append(j.Credit, domain.AccountAmount{Account: counterpart.account(), Amount: total})

	return j
}

// SaleCounterpart selects the debit account for a sale.
type SaleCounterpart int

const (
	SaleByBank SaleCounterpart = iota
	SaleByReceivable
	SaleByAdvance
)

func (c SaleCounterpart) account() string {
	switch c {
	case SaleByReceivable:
		return accountReceivable
	case SaleByAdvance:
		return accountAdvance
	default:
		return accountBank
	}
}

// SaleJournal debits the counterpart for the full total and credits
// the income account, splitting out received consumption tax.
func SaleJournal(date time.Time, account string, total decimal.Decimal, tax *decimal.Decimal, desc string, counterpart SaleCounterpart) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.InTerm,
		Date:        date,
		Description: desc,
	}

	j.Debit = append(j.Debit, domain.AccountAmount{Account: counterpart.account(), Amount: total})

	net := total
	if tax != nil {
		net = total.Sub(*tax)
	}
	j.Credit = append(j.Credit, domain.AccountAmount{Account: account, Amount: net})
	if tax != nil {
		j.Credit = append(j.Credit, domain.AccountAmount{Account: accountTaxReceived, Amount: *tax})
	}

	return j
}

// BankJournal records a movement between the bank account and the
// owner: bankSide Debit means money came in (owed to owner), Credit
// means money went out (owed by owner).
func BankJournal(date time.Time, total decimal.Decimal, desc string, bankSide domain.AmountSide) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.InTerm,
		Date:        date,
		Description: desc,
	}

	bank := domain.AccountAmount{Account: accountBank, Amount: total}
	if bankSide == domain.Debit {
		j.Debit = append(j.Debit, bank)
		j.Credit = append(j.Credit, domain.AccountAmount{Account: accountOwnerCredit, Amount: total})
	} else {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: accountOwnerDebit, Amount: total})
		j.Credit = append(j.Credit, bank)
	}

	return j
}

// FromPrevJournal opens a period balance on the given side against
// the dedicated carry-in counterpart account.
func FromPrevJournal(date time.Time, account string, total decimal.Decimal, desc string, side domain.AmountSide) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.FromPrev,
		Date:        date,
		Description: desc,
	}

	line := domain.AccountAmount{Account: account, Amount: total}
	if side == domain.Debit {
		j.Debit = append(j.Debit, line)
		j.Credit = append(j.Credit, domain.AccountAmount{Account: accountCarryInDebit, Amount: total})
	} else {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: accountCarryInCredit, Amount: total})
		j.Credit = append(j.Credit, line)
	}

	return j
}

// KessanAccrualJournal books a closing accrual: accrued income (未収金
// on the debit side) or an accrued expense (未払金 on the credit side)
// against the caller's account.
func KessanAccrualJournal(date time.Time, account string, total decimal.Decimal, desc string, side domain.AmountSide) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.Kessan,
		Date:        date,
		Description: desc,
	}

	if side == domain.Debit {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: accountAccrued, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: account, Amount: total})
	} else {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: account, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: accountUnpaid, Amount: total})
	}

	return j
}

// KessanOffsetKind selects which account pair a closing offset nets.
type KessanOffsetKind int

const (
	OffsetConsumptionTax KessanOffsetKind = iota
	OffsetOwner
)

// KessanOffsetJournal nets a paired set of accounts at closing:
// received vs paid consumption tax, or owner credit vs owner debit.
func KessanOffsetJournal(date time.Time, total decimal.Decimal, desc string, kind KessanOffsetKind) *domain.Journal {
	debitAccount, creditAccount := accountTaxReceived, accountTaxPaid
	if kind == OffsetOwner {
		debitAccount, creditAccount = accountOwnerCredit, accountOwnerDebit
	}

	return &domain.Journal{
		Type:        domain.Kessan,
		Date:        date,
		Description: desc,
		Debit:       []domain.AccountAmount{{Account: debitAccount, Amount: total}},
		Credit:      []domain.AccountAmount{{Account: creditAccount, Amount: total}},
	}
}

// SonekiKind selects which direction a profit-and-loss clearing
// entry runs.
type SonekiKind int

const (
	SonekiIncome SonekiKind = iota
	SonekiExpense
)

// SonekiJournal clears an income or expense account into 損益.
// Income balances are debited out of their account into it; expense
// balances are credited out.
func SonekiJournal(date time.Time, account string, total decimal.Decimal, desc string, kind SonekiKind) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.Soneki,
		Date:        date,
		Description: desc,
	}

	if kind == SonekiIncome {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: account, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: accountProfitLoss, Amount: total})
	} else {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: accountProfitLoss, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: account, Amount: total})
	}

	return j
}

// ToNextCapitalJournal rolls a period result into 資本金. side names
// the side 資本金 is posted on: Credit grows capital, Debit shrinks
// it.
func ToNextCapitalJournal(date time.Time, account string, total decimal.Decimal, desc string, side domain.AmountSide) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.ToNext,
		Date:        date,
		Description: desc,
	}

	if side == domain.Debit {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: accountCapital, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: account, Amount: total})
	} else {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: account, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: accountCapital, Amount: total})
	}

	return j
}

// ToNextJournal closes a balance into the dedicated carry-forward
// counterpart account. side names the side the account's balance
// sits on.
func ToNextJournal(date time.Time, account string, total decimal.Decimal, desc string, side domain.AmountSide) *domain.Journal {
	j := &domain.Journal{
		Type:        domain.ToNext,
		Date:        date,
		Description: desc,
	}

	if side == domain.Debit {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: accountCarryToDebit, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: account, Amount: total})
	} else {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: account, Amount: total})
		j.Credit = append(j.Credit, domain.AccountAmount{Account: accountCarryToCredit, Amount: total})
	}

	return j
}
