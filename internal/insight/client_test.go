package insight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
)

func TestRoastRequest(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Do better."}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", "test-model")
	got, err := c.Roast(context.Background(), RoastContext{Pending: 5, UrgentPending: 2, CompletedToday: 0, Streak: 1})
	if err != nil {
		t.Fatalf("Roast: %v", err)
	}
	if got != "Do better." {
		t.Fatalf("roast=%q, want %q", got, "Do better.")
	}
	if gotPath != chatEndpoint {
		t.Fatalf("path=%q, want %q", gotPath, chatEndpoint)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("auth=%q, want bearer token", gotAuth)
	}
}

func TestGenerateErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "test-model")
	if _, err := c.WeeklyReport(context.Background(), []analytics.DaySummary{{Date: "2026-03-10", Completed: 1, Total: 1}}); err == nil {
		t.Fatalf("expected error on 500 response")
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer empty.Close()

	c2 := NewClient(empty.URL, "", "test-model")
	if _, err := c2.Roast(context.Background(), RoastContext{}); err == nil {
		t.Fatalf("expected error on empty choices")
	}
}

func TestTimingInsightShortCircuits(t *testing.T) {
	// Unreachable base URL proves no request is made for empty data.
	c := NewClient("http://127.0.0.1:0", "", "test-model")
	got, err := c.TimingInsight(context.Background(), analytics.TimeOfDay{})
	if err != nil {
		t.Fatalf("TimingInsight: %v", err)
	}
	if got != InsufficientData {
		t.Fatalf("got %q, want insufficient-data message", got)
	}
}
