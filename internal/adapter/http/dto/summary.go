package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/domain"
)

// SummaryResponse is one trial-balance row, already netted to the
// account's natural side.
type SummaryResponse struct {
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// SummaryFromDomain converts a domain summary row to a response.
func SummaryFromDomain(s *domain.Summary) *SummaryResponse {
	return &SummaryResponse{
		AccountName: s.AccountName,
		Debit:       s.Debit,
		Credit:      s.Credit,
	}
}

// SummariesFromDomain converts domain summary rows to responses.
func SummariesFromDomain(summaries []*domain.Summary) []*SummaryResponse {
	result := make([]*SummaryResponse, len(summaries))
	for i, s := range summaries {
		result[i] = SummaryFromDomain(s)
	}
	return result
}
