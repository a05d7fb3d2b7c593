package http

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"worldforge/internal/contextutil"
)

// RateLimitConfig holds the token bucket settings applied per client.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate. Zero or less disables limiting.
	RequestsPerSecond float64
	// Burst is the maximum burst size.
	Burst int
}

// limiterIdleTimeout is the minimum time a client must be idle before its
// bucket is dropped.
const limiterIdleTimeout = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters hands out one token bucket per client address. Buckets
// idle for longer than ttl are swept on access, at most once per ttl.
type clientLimiters struct {
	mu        sync.Mutex
	cfg       RateLimitConfig
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	limiters  map[string]*clientLimiter
}

func newClientLimiters(cfg RateLimitConfig) *clientLimiters {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	// A bucket idle for burst/rps is full again, so dropping it later than
	// that changes nothing for the client.
	ttl := time.Duration(float64(cfg.Burst) / cfg.RequestsPerSecond * float64(time.Second))
	if ttl < limiterIdleTimeout {
		ttl = limiterIdleTimeout
	}
	return &clientLimiters{
		cfg:       cfg,
		ttl:       ttl,
		now:       time.Now,
		lastSweep: time.Now(),
		limiters:  make(map[string]*clientLimiter),
	}
}

func (c *clientLimiters) get(client string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) >= c.ttl {
		for key, cl := range c.limiters {
			if now.Sub(cl.lastSeen) >= c.ttl {
				delete(c.limiters, key)
			}
		}
		c.lastSweep = now
	}

	cl, ok := c.limiters[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(c.cfg.RequestsPerSecond), c.cfg.Burst)}
		c.limiters[client] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

func (c *clientLimiters) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.limiters)
}

// RateLimit rejects requests with 429 once a client exceeds cfg.
// Clients are keyed by the host part of RemoteAddr.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiters := newClientLimiters(cfg)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / cfg.RequestsPerSecond)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientKey(r)
			if !limiters.get(client).Allow() {
				ctx := r.Context()
				contextutil.LoggerFromContext(ctx).WarnContext(ctx, "rate limit exceeded", "client", client)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", retryAfter)
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
