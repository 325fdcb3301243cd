package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/boki/internal/adapter/http/dto"
	"github.com/iho/boki/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, http.StatusBadRequest},
		{"invalid period", domain.ErrInvalidPeriod, http.StatusBadRequest},
		{"unbalanced transaction", domain.ErrUnbalancedTransaction, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"duplicate account name", domain.ErrDuplicateAccountName, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestErrorTag(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{domain.ErrNotFound, "NotFound"},
		{domain.ErrAccountNotFound, "AccountNotFound"},
		{domain.ErrInvalidPeriod, "InvalidPeriod"},
		{domain.ErrUnbalancedTransaction, "UnbalancedTransaction"},
		{domain.ErrInvalidAmount, "InvalidAmount"},
		{domain.ErrDuplicateAccountName, "DuplicateAccountName"},
		{errors.New("boom"), "InternalError"},
	}

	for _, tt := range tests {
		if got := errorTag(tt.err); got != tt.expected {
			t.Fatalf("errorTag(%v) = %q, expected %q", tt.err, got, tt.expected)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusCreated, dto.OKOnly())

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	var resp dto.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("expected status OK, got %s", resp.Status)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, domain.ErrUnbalancedTransaction)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "UnbalancedTransaction" {
		t.Fatalf("expected UnbalancedTransaction status, got %s", resp.Status)
	}
	if resp.Message == "" {
		t.Fatalf("expected error message to be set")
	}
}
