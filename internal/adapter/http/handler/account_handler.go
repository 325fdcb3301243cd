package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/boki/internal/adapter/http/dto"
	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	FindByName(ctx context.Context, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// AccountHandler handles chart-of-accounts HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// List returns the whole chart.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.AccountsFromDomain(accounts)))
}

// Get returns a single account looked up by name.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountUC.FindByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.AccountFromDomain(account)))
}

// Create adds an account with an explicit classification.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if _, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.OKOnly())
}

// CreateTyped returns a handler that creates an account under a fixed
// classification, for the /asset, /liability, ... shortcuts.
func (h *AccountHandler) CreateTyped(accountType domain.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.AccountNameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		input := usecase.CreateAccountInput{Name: req.Name, Type: accountType}
		if _, err := h.accountUC.CreateAccount(r.Context(), input); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, dto.OKOnly())
	}
}
