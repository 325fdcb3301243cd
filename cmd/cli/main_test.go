package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","message":"query accounts."}`))
	}))
	defer srv.Close()

	out, err := fetch(srv.URL, "/api/v1/accounts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `"status": "OK"`) {
		t.Fatalf("expected pretty-printed envelope, got %q", out)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"InvalidPeriod","message":"bad month"}`))
	}))
	defer srv.Close()

	if _, err := fetch(srv.URL, "/api/v1/summary/2026/13"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := fetch(url, "/api/v1/accounts"); err == nil {
		t.Fatalf("expected error when server is down")
	}
}
