package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/boki/internal/adapter/http/dto"
	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

// TemplateHandler exposes the journal template endpoints. Each one
// expands its input into a journal and pushes it through the normal
// posting path.
type TemplateHandler struct {
	journalUC JournalService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(journalUC JournalService) *TemplateHandler {
	return &TemplateHandler{journalUC: journalUC}
}

func (h *TemplateHandler) post(w http.ResponseWriter, r *http.Request, j *domain.Journal) {
	if _, err := h.journalUC.PostJournal(r.Context(), j); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.OKOnly())
}

// Buy returns a handler that books a purchase against the given
// counterpart.
func (h *TemplateHandler) Buy(counterpart usecase.PurchaseCounterpart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.BuyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.PurchaseJournal(req.Date.Time, req.Account, req.Total, req.Tax, req.Desc, counterpart))
	}
}

// Sell returns a handler that books a sale against the given
// counterpart.
func (h *TemplateHandler) Sell(counterpart usecase.SaleCounterpart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SellRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.SaleJournal(req.Date.Time, req.Account, req.Total, req.Tax, req.Desc, counterpart))
	}
}

// Bank returns a handler that books a bank movement. bankSide Debit
// is a deposit, Credit a withdrawal.
func (h *TemplateHandler) Bank(bankSide domain.AmountSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.BankRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.BankJournal(req.Date.Time, req.Total, req.Desc, bankSide))
	}
}

// FromPrev returns a handler that opens a period balance on the given
// side.
func (h *TemplateHandler) FromPrev(side domain.AmountSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SimpleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.FromPrevJournal(req.Date.Time, req.Account, req.Total, req.Desc, side))
	}
}

// KessanAccrual returns a handler that books a closing accrual.
func (h *TemplateHandler) KessanAccrual(side domain.AmountSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SimpleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.KessanAccrualJournal(req.Date.Time, req.Account, req.Total, req.Desc, side))
	}
}

// KessanOffset returns a handler that nets a fixed account pair at
// closing.
func (h *TemplateHandler) KessanOffset(kind usecase.KessanOffsetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.OffsetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.KessanOffsetJournal(req.Date.Time, req.Total, req.Desc, kind))
	}
}

// Soneki returns a handler that clears an income or expense account
// into the profit-and-loss account.
func (h *TemplateHandler) Soneki(kind usecase.SonekiKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SimpleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.SonekiJournal(req.Date.Time, req.Account, req.Total, req.Desc, kind))
	}
}

// ToNextCapital returns a handler that rolls a period result into
// capital.
func (h *TemplateHandler) ToNextCapital(side domain.AmountSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SimpleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.ToNextCapitalJournal(req.Date.Time, req.Account, req.Total, req.Desc, side))
	}
}

// ToNext returns a handler that carries a balance forward.
func (h *TemplateHandler) ToNext(side domain.AmountSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SimpleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}

		h.post(w, r, usecase.ToNextJournal(req.Date.Time, req.Account, req.Total, req.Desc, side))
	}
}
