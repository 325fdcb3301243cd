package domain

// AmountSide is the side of a double-entry posting.
type AmountSide int

const (
	Debit AmountSide = iota
	Credit
)

// String returns the English name of the side.
func (s AmountSide) String() string {
	if s == Credit {
		return "Credit"
	}
	return "Debit"
}

// Japanese returns the bookkeeping term for the side.
func (s AmountSide) Japanese() string {
	if s == Credit {
		return "貸方"
	}
	return "借方"
}

// AccountType classifies an account in the chart of accounts.
// The declaration order is the canonical sort order for account
// listings and summary rows.
type AccountType int

const (
	Asset AccountType = iota
	Liability
	Equity
	Income
	Expense
	UtilDebit
	UtilCredit
)

var accountTypeNames = [...]string{
	Asset:      "Asset",
	Liability:  "Liability",
	Equity:     "Equity",
	Income:     "Income",
	Expense:    "Expense",
	UtilDebit:  "UtilDebit",
	UtilCredit: "UtilCredit",
}

var accountTypeJapanese = [...]string{
	Asset:      "資産",
	Liability:  "負債",
	Equity:     "資本",
	Income:     "収益",
	Expense:    "費用",
	UtilDebit:  "作業用借方",
	UtilCredit: "作業用貸方",
}

func (t AccountType) String() string {
	if t < Asset || t > UtilCredit {
		return accountTypeNames[UtilDebit]
	}
	return accountTypeNames[t]
}

// Japanese returns the bookkeeping term for the classification.
func (t AccountType) Japanese() string {
	if t < Asset || t > UtilCredit {
		return accountTypeJapanese[UtilDebit]
	}
	return accountTypeJapanese[t]
}

// ParseAccountType accepts the English enum name or its Japanese
// alias. Unknown values fall back to UtilDebit so rows written by
// older tooling still read back.
func ParseAccountType(s string) AccountType {
	for t, name := range accountTypeNames {
		if s == name {
			return AccountType(t)
		}
	}
	switch s {
	case "資産":
		return Asset
	case "負債":
		return Liability
	case "資本":
		return Equity
	case "収益":
		return Income
	case "費用":
		return Expense
	case "作業用借方", "借方":
		return UtilDebit
	case "作業用貸方", "貸方":
		return UtilCredit
	}
	return UtilDebit
}

// Side returns the side on which a positive balance for this
// classification naturally accumulates. Derived, never stored.
func (t AccountType) Side() AmountSide {
	switch t {
	case Asset, Expense, UtilDebit:
		return Debit
	case Liability, Equity, Income, UtilCredit:
		return Credit
	default:
		return Debit
	}
}

// Account is one entry in the chart of accounts. Name and Type are
// immutable once created.
type Account struct {
	Name string
	ID   int32
	Type AccountType
}
