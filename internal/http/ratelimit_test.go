package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// One token per 1000s so the bucket never refills during the test.
	limited := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})(handler)

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/1/search?q=a", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := do("10.0.0.1:1234"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %v, want %v", i, w.Code, http.StatusOK)
		}
	}

	// Same host on another port shares the bucket.
	w := do("10.0.0.1:5678")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("RateLimit() status = %v, want %v", w.Code, http.StatusTooManyRequests)
	}
	if got := w.Header().Get("Retry-After"); got != "1000" {
		t.Errorf("Retry-After = %q, want 1000", got)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	if w := do("10.0.0.2:1234"); w.Code != http.StatusOK {
		t.Errorf("other client status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(RateLimitConfig{})(handler)

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %v, want %v", i, w.Code, http.StatusOK)
		}
	}
}

func TestClientLimiters_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	limiters := newClientLimiters(RateLimitConfig{RequestsPerSecond: 1, Burst: 5})
	limiters.now = func() time.Time { return now }
	limiters.lastSweep = now

	limiters.get("10.0.0.1")
	limiters.get("10.0.0.2")
	if got := limiters.len(); got != 2 {
		t.Fatalf("len() = %d, want 2", got)
	}

	// 10.0.0.2 stays active, 10.0.0.1 goes idle
	now = now.Add(limiterIdleTimeout / 2)
	limiters.get("10.0.0.2")

	now = now.Add(limiterIdleTimeout / 2)
	limiters.get("10.0.0.3")
	if got := limiters.len(); got != 2 {
		t.Errorf("len() after sweep = %d, want 2", got)
	}
	if _, ok := limiters.limiters["10.0.0.1"]; ok {
		t.Error("idle client 10.0.0.1 was not evicted")
	}
}

func TestClientLimiters_KeepsBucketsUntilRefilled(t *testing.T) {
	// Refilling 64 tokens at 1/16 per second takes 1024s, longer than the idle timeout.
	limiters := newClientLimiters(RateLimitConfig{RequestsPerSecond: 0.0625, Burst: 64})
	if want := 1024 * time.Second; limiters.ttl != want {
		t.Errorf("ttl = %v, want %v", limiters.ttl, want)
	}

	limiters = newClientLimiters(RateLimitConfig{RequestsPerSecond: 10, Burst: 20})
	if limiters.ttl != limiterIdleTimeout {
		t.Errorf("ttl = %v, want %v", limiters.ttl, limiterIdleTimeout)
	}
}
