package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/boki/internal/adapter/http/dto"
	"github.com/iho/boki/internal/domain"
)

// Journal dates are booked against the Japanese business day.
var jst = time.FixedZone("JST", 9*60*60)

// JournalService defines the behavior needed by JournalHandler.
type JournalService interface {
	PostJournal(ctx context.Context, j *domain.Journal) (int32, error)
	JournalsByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Journal, error)
}

// JournalHandler handles journal HTTP requests.
type JournalHandler struct {
	journalUC JournalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalUC JournalService) *JournalHandler {
	return &JournalHandler{journalUC: journalUC}
}

// Post books a free-form journal entry.
func (h *JournalHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if _, err := h.journalUC.PostJournal(r.Context(), req.ToDomain()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.OKOnly())
}

// ShowCurrentMonth lists the current month's journal.
func (h *JournalHandler) ShowCurrentMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(jst)
	h.show(w, r, now.Year(), now.Month())
}

// Show lists the journal for the month in the path.
func (h *JournalHandler) Show(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeBadRequest(w, "invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeBadRequest(w, "invalid month")
		return
	}

	h.show(w, r, year, time.Month(month))
}

func (h *JournalHandler) show(w http.ResponseWriter, r *http.Request, year int, month time.Month) {
	journals, err := h.journalUC.JournalsByMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.JournalsFromDomain(journals)))
}
