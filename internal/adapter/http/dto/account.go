package dto

import (
	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

// CreateAccountRequest carries a new chart entry with an explicit
// classification.
type CreateAccountRequest struct {
	AccountName string `json:"account_name"`
	AccountType string `json:"account_type"`
}

// ToUseCaseInput converts the request into use case input.
func (r CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name: r.AccountName,
		Type: domain.ParseAccountType(r.AccountType),
	}
}

// AccountNameRequest carries just a name for the per-classification
// creation shortcuts.
type AccountNameRequest struct {
	Name string `json:"name"`
}

// AccountResponse represents an account in API responses. The
// classification and its natural side render as bookkeeping terms.
type AccountResponse struct {
	AccountName string `json:"account_name"`
	AccountType string `json:"account_type"`
	AmountSide  string `json:"amount_side"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		AccountName: a.Name,
		AccountType: a.Type.Japanese(),
		AmountSide:  a.Type.Side().Japanese(),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}
