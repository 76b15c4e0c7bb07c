package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func fastConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}
}

func getFn(url string) RequestFunc {
	return func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}
}

func retryOnRetriable(_ int, resp *http.Response) (bool, error) {
	return IsRetriableStatus(resp.StatusCode), nil
}

func TestDoWithRetry_FirstAttemptSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := DoWithRetry(context.Background(), server.Client(), fastConfig(), getFn(server.URL), retryOnRetriable)
	if err != nil {
		t.Fatalf("DoWithRetry: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestDoWithRetry_RecoversAfterServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := DoWithRetry(context.Background(), server.Client(), fastConfig(), getFn(server.URL), retryOnRetriable)
	if err != nil {
		t.Fatalf("DoWithRetry: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestDoWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := fastConfig()
	_, err := DoWithRetry(context.Background(), server.Client(), cfg, getFn(server.URL), retryOnRetriable)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !IsHTTPStatus(err, http.StatusServiceUnavailable) {
		t.Errorf("expected 503 in error chain, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != int32(cfg.MaxRetries)+1 {
		t.Errorf("calls = %d, want %d", got, cfg.MaxRetries+1)
	}
}

func TestDoWithRetry_NonRetriableStatusReturnsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resp, err := DoWithRetry(context.Background(), server.Client(), fastConfig(), getFn(server.URL), retryOnRetriable)
	if err != nil {
		t.Fatalf("DoWithRetry: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404 passed through", resp.StatusCode)
	}
}

func TestDoWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     time.Second,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := DoWithRetry(ctx, server.Client(), cfg, getFn(server.URL), retryOnRetriable)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestRetryDelay_HonorsRetryAfterHeader(t *testing.T) {
	cfg := DefaultRetryConfig()
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"2"}}}

	if got := RetryDelay(cfg, 0, resp); got != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", got)
	}
}

func TestRetryDelay_CapsAtMaxDelay(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 5, InitialDelay: time.Second, MaxDelay: 2 * time.Second}

	if got := RetryDelay(cfg, 4, nil); got > 2*time.Second {
		t.Errorf("RetryDelay = %v exceeds cap", got)
	}

	resp := &http.Response{Header: http.Header{"Retry-After": []string{"600"}}}
	if got := RetryDelay(cfg, 0, resp); got != 2*time.Second {
		t.Errorf("Retry-After should be capped, got %v", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if _, ok := ParseRetryAfter(nil); ok {
		t.Error("nil response should not parse")
	}

	resp := &http.Response{Header: http.Header{}}
	if _, ok := ParseRetryAfter(resp); ok {
		t.Error("missing header should not parse")
	}

	resp.Header.Set("Retry-After", "30")
	if d, ok := ParseRetryAfter(resp); !ok || d != 30*time.Second {
		t.Errorf("seconds form = %v, %v", d, ok)
	}

	resp.Header.Set("Retry-After", time.Now().Add(10*time.Second).UTC().Format(http.TimeFormat))
	if d, ok := ParseRetryAfter(resp); !ok || d <= 0 || d > 10*time.Second {
		t.Errorf("date form = %v, %v", d, ok)
	}
}

func TestIsRetriableStatus(t *testing.T) {
	for _, code := range []int{429, 500, 502, 503, 504} {
		if !IsRetriableStatus(code) {
			t.Errorf("expected %d to be retriable", code)
		}
	}
	for _, code := range []int{200, 301, 400, 401, 404} {
		if IsRetriableStatus(code) {
			t.Errorf("expected %d to not be retriable", code)
		}
	}
}
