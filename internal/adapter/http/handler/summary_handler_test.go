package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/boki/internal/adapter/http/dto"
	"github.com/iho/boki/internal/domain"
)

type summaryServiceStub struct {
	byScopeFn func(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error)
}

func (s *summaryServiceStub) ByScope(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
	return s.byScopeFn(ctx, start, end, upto)
}

func TestSummaryHandler_Year(t *testing.T) {
	var gotStart, gotEnd time.Time
	var gotUpto domain.TransactionType
	h := NewSummaryHandler(&summaryServiceStub{
		byScopeFn: func(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
			gotStart, gotEnd, gotUpto = start, end, upto
			return []*domain.Summary{
				{AccountName: "現金", Debit: decimal.NewFromInt(5000), Credit: decimal.Zero, AccountID: 1, AccountType: domain.Asset},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/summary/2026", nil)
	req = withURLParams(req, map[string]string{"year": "2026"})
	rec := httptest.NewRecorder()

	h.Year(domain.InTerm)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotStart != time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start: %v", gotStart)
	}
	if gotEnd != time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected end: %v", gotEnd)
	}
	if gotUpto != domain.InTerm {
		t.Fatalf("unexpected scope: %v", gotUpto)
	}

	var resp struct {
		Status string                `json:"status"`
		Body   []dto.SummaryResponse `json:"body"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Body) != 1 || resp.Body[0].AccountName != "現金" {
		t.Fatalf("unexpected summary body: %+v", resp.Body)
	}
}

func TestSummaryHandler_Month(t *testing.T) {
	var gotStart, gotEnd time.Time
	h := NewSummaryHandler(&summaryServiceStub{
		byScopeFn: func(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
			gotStart, gotEnd = start, end
			return []*domain.Summary{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/summary/2026/2", nil)
	req = withURLParams(req, map[string]string{"year": "2026", "month": "2"})
	rec := httptest.NewRecorder()

	h.Month(domain.InTerm)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotStart != time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start: %v", gotStart)
	}
	if gotEnd != time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected end: %v", gotEnd)
	}
}

func TestSummaryHandler_InvalidYear(t *testing.T) {
	h := NewSummaryHandler(&summaryServiceStub{
		byScopeFn: func(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
			t.Fatal("ByScope should not be called for an invalid year")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/summary/bad", nil)
	req = withURLParams(req, map[string]string{"year": "bad"})
	rec := httptest.NewRecorder()

	h.Year(domain.InTerm)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSummaryHandler_YearOutOfRange(t *testing.T) {
	h := NewSummaryHandler(&summaryServiceStub{
		byScopeFn: func(ctx context.Context, start, end time.Time, upto domain.TransactionType) ([]*domain.Summary, error) {
			t.Fatal("ByScope should not be called for an out-of-range year")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/summary/99999", nil)
	req = withURLParams(req, map[string]string{"year": "99999"})
	rec := httptest.NewRecorder()

	h.Year(domain.InTerm)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "InvalidPeriod" {
		t.Fatalf("expected InvalidPeriod status, got %s", resp.Status)
	}
}
