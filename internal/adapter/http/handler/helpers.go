package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/boki/internal/adapter/http/dto"
	"github.com/iho/boki/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a domain error in the response envelope with the
// status code it maps to.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapDomainError(err), dto.Error(errorTag(err), err.Error()))
}

// writeBadRequest writes a 400 for malformed input.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, dto.Error("BadRequest", message))
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnbalancedTransaction):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateAccountName):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorTag names the error category in the response envelope.
func errorTag(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "NotFound"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "AccountNotFound"
	case errors.Is(err, domain.ErrInvalidPeriod):
		return "InvalidPeriod"
	case errors.Is(err, domain.ErrUnbalancedTransaction):
		return "UnbalancedTransaction"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "InvalidAmount"
	case errors.Is(err, domain.ErrDuplicateAccountName):
		return "DuplicateAccountName"
	default:
		return "InternalError"
	}
}
