package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/boki/internal/adapter/http/dto"
	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	ByScope(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error)
}

// SummaryHandler handles trial-balance HTTP requests.
type SummaryHandler struct {
	summaryUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryUC SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC}
}

// Year returns a handler for a yearly summary at the given scope.
func (h *SummaryHandler) Year(upto domain.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			writeBadRequest(w, "invalid year")
			return
		}

		start, end, err := usecase.YearPeriod(year)
		if err != nil {
			writeError(w, err)
			return
		}

		h.respond(w, r, start, end, upto)
	}
}

// Month returns a handler for a monthly summary at the given scope.
func (h *SummaryHandler) Month(upto domain.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			writeBadRequest(w, "invalid year")
			return
		}
		month, err := strconv.Atoi(chi.URLParam(r, "month"))
		if err != nil {
			writeBadRequest(w, "invalid month")
			return
		}

		start, end, err := usecase.MonthPeriod(year, month)
		if err != nil {
			writeError(w, err)
			return
		}

		h.respond(w, r, start, end, upto)
	}
}

func (h *SummaryHandler) respond(w http.ResponseWriter, r *http.Request, start, end time.Time, upto domain.TransactionType) {
	summaries, err := h.summaryUC.ByScope(r.Context(), start, end, upto)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OK(dto.SummariesFromDomain(summaries)))
}
