package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRetryRecoversFromServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"name": "demo"}`))
	}))
	defer srv.Close()

	c, err := New(Config{
		APIKey:       "k",
		BaseURL:      srv.URL,
		MaxRetries:   3,
		RetryBackoff: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := c.Get(context.Background(), "projects", nil, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Name != "demo" {
		t.Fatalf("unexpected decode %+v", out)
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestRetryGivesUpAfterBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := New(Config{
		APIKey:       "k",
		BaseURL:      srv.URL,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.Get(context.Background(), "projects", nil, nil); err == nil {
		t.Fatalf("expected error after retry budget")
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestNoRetryForRequestsWithBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", BaseURL: srv.URL, MaxRetries: 3, RetryBackoff: time.Millisecond})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.PostJSON(context.Background(), "listen", nil, map[string]string{"url": "x"}, nil); err == nil {
		t.Fatalf("expected error")
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected exactly one attempt for a body request, got %d", n)
	}
}

func TestRetryableClassification(t *testing.T) {
	if !retryable(&APIError{Status: http.StatusTooManyRequests}) {
		t.Fatalf("429 must be retryable")
	}
	if !retryable(&UnknownAPIError{Status: http.StatusBadGateway}) {
		t.Fatalf("502 must be retryable")
	}
	if retryable(&APIError{Status: http.StatusBadRequest}) {
		t.Fatalf("400 must not be retryable")
	}
	if retryable(nil) {
		t.Fatalf("nil must not be retryable")
	}
}
