package transport

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 1 * time.Second
	DefaultMaxDelay     = 30 * time.Second
)

// RetryConfig configures retry behavior for HTTP requests.
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryConfig returns a RetryConfig with the package defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
		MaxDelay:     DefaultMaxDelay,
	}
}

func (cfg RetryConfig) normalized() RetryConfig {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = DefaultInitialDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	return cfg
}

// RequestFunc builds a fresh request for each retry attempt. Requests
// cannot be replayed once their body has been consumed.
type RequestFunc func(ctx context.Context) (*http.Request, error)

// RetryDecision reports whether a received response should be retried.
type RetryDecision func(attempt int, resp *http.Response) (bool, error)

// DoWithRetry executes a request, retrying transient failures with
// exponential backoff. The context bounds the whole exchange including
// backoff sleeps.
func DoWithRetry(ctx context.Context, client *http.Client, cfg RetryConfig, reqFn RequestFunc, shouldRetry RetryDecision) (*http.Response, error) {
	cfg = cfg.normalized()
	if shouldRetry == nil {
		shouldRetry = func(int, *http.Response) (bool, error) { return false, nil }
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		req, err := reqFn(ctx)
		if err != nil {
			return nil, err
		}

		var lastResp *http.Response
		resp, err := client.Do(req)
		switch {
		case err != nil && !IsRetriableError(err):
			return nil, err
		case err != nil:
			lastErr = err
		default:
			retry, decisionErr := shouldRetry(attempt, resp)
			if decisionErr != nil {
				_ = resp.Body.Close()
				return nil, decisionErr
			}
			if !retry {
				return resp, nil
			}
			_ = resp.Body.Close()
			lastResp = resp
			lastErr = &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
		}

		if attempt == cfg.MaxRetries {
			break
		}
		select {
		case <-time.After(RetryDelay(cfg, attempt, lastResp)):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("request failed")
	}
	return nil, fmt.Errorf("request failed after %d retries: %w", cfg.MaxRetries, lastErr)
}

// RetryDelay computes the backoff before the next attempt. A server
// supplied Retry-After header wins over the exponential schedule.
func RetryDelay(cfg RetryConfig, attempt int, resp *http.Response) time.Duration {
	cfg = cfg.normalized()

	if retryAfter, ok := ParseRetryAfter(resp); ok {
		if retryAfter > cfg.MaxDelay {
			return cfg.MaxDelay
		}
		return retryAfter
	}

	delay := cfg.InitialDelay * (1 << uint(attempt))

	// Jitter of up to 20% either way so callers do not sync up.
	if jitterRange := int64(delay) / 5; jitterRange > 0 {
		delay += time.Duration(rand.Int63n(jitterRange*2) - jitterRange)
	}

	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	return delay
}

// ParseRetryAfter parses the Retry-After header, in either the
// delay-seconds or the HTTP-date form.
func ParseRetryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, true
	}
	if t, err := http.ParseTime(value); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}

// IsRetriableStatus reports whether a status code is worth retrying.
func IsRetriableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// IsRetriableError reports whether a transport error should be retried.
func IsRetriableError(err error) bool {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}
	return false
}
