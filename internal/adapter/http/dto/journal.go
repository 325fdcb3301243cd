package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/domain"
)

// AccountAmount is one journal line: an account name and the amount
// booked against it.
type AccountAmount struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// JournalRequest is a free-form journal entry: debit lines and credit
// lines that must balance.
type JournalRequest struct {
	TransactionType string          `json:"transaction_type"`
	Date            Date            `json:"date"`
	Debit           []AccountAmount `json:"debit"`
	Credit          []AccountAmount `json:"credit"`
	Desc            string          `json:"desc"`
}

// ToDomain converts the request into a domain journal.
func (r JournalRequest) ToDomain() *domain.Journal {
	j := &domain.Journal{
		Type:        domain.ParseTransactionType(r.TransactionType),
		Date:        r.Date.Time,
		Description: r.Desc,
	}
	for _, line := range r.Debit {
		j.Debit = append(j.Debit, domain.AccountAmount{Account: line.Account, Amount: line.Amount})
	}
	for _, line := range r.Credit {
		j.Credit = append(j.Credit, domain.AccountAmount{Account: line.Account, Amount: line.Amount})
	}
	return j
}

// JournalResponse mirrors JournalRequest for listings; the stage
// renders as its bookkeeping term.
type JournalResponse struct {
	TransactionType string          `json:"transaction_type"`
	Date            Date            `json:"date"`
	Debit           []AccountAmount `json:"debit"`
	Credit          []AccountAmount `json:"credit"`
	Desc            string          `json:"desc"`
}

// JournalFromDomain converts a domain journal to a response.
func JournalFromDomain(j *domain.Journal) *JournalResponse {
	resp := &JournalResponse{
		TransactionType: j.Type.Japanese(),
		Date:            NewDate(j.Date),
		Desc:            j.Description,
		Debit:           make([]AccountAmount, 0, len(j.Debit)),
		Credit:          make([]AccountAmount, 0, len(j.Credit)),
	}
	for _, line := range j.Debit {
		resp.Debit = append(resp.Debit, AccountAmount{Account: line.Account, Amount: line.Amount})
	}
	for _, line := range j.Credit {
		resp.Credit = append(resp.Credit, AccountAmount{Account: line.Account, Amount: line.Amount})
	}
	return resp
}

// JournalsFromDomain converts domain journals to responses.
func JournalsFromDomain(journals []*domain.Journal) []*JournalResponse {
	result := make([]*JournalResponse, len(journals))
	for i, j := range journals {
		result[i] = JournalFromDomain(j)
	}
	return result
}
