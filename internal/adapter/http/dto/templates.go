package dto

import (
	"github.com/shopspring/decimal"
)

// Requests for the journal template endpoints. Each template expands
// into a full journal server-side; the client supplies only the
// variable pieces.

// BuyRequest books a purchase. Tax, when present, is split out of the
// total into the paid consumption tax account.
type BuyRequest struct {
	Date    Date             `json:"date"`
	Account string           `json:"account"`
	Total   decimal.Decimal  `json:"total"`
	Tax     *decimal.Decimal `json:"tax,omitempty"`
	Desc    string           `json:"desc"`
}

// SellRequest books a sale. Tax, when present, is split out of the
// total into the received consumption tax account.
type SellRequest struct {
	Date    Date             `json:"date"`
	Account string           `json:"account"`
	Total   decimal.Decimal  `json:"total"`
	Tax     *decimal.Decimal `json:"tax,omitempty"`
	Desc    string           `json:"desc"`
}

// BankRequest books a movement between the bank account and the
// owner.
type BankRequest struct {
	Date  Date            `json:"date"`
	Total decimal.Decimal `json:"total"`
	Desc  string          `json:"desc"`
}

// SimpleRequest covers the single-account templates: opening
// balances, closing accruals, profit-and-loss clearing, and
// carry-forward.
type SimpleRequest struct {
	Date    Date            `json:"date"`
	Account string          `json:"account"`
	Total   decimal.Decimal `json:"total"`
	Desc    string          `json:"desc"`
}

// OffsetRequest covers the closing offsets that involve only fixed
// account pairs.
type OffsetRequest struct {
	Date  Date            `json:"date"`
	Total decimal.Decimal `json:"total"`
	Desc  string          `json:"desc"`
}
