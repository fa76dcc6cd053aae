// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Default limits, overridable via environment.
const (
	defaultCapacity   = 30
	defaultRefillRate = 10.0 // tokens per second
)

// tokenBucket allows a burst of capacity requests, refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

func (tb *tokenBucket) allow(now time.Time) bool {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens += elapsed.Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks one token bucket per client id.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	capacity   int
	refillRate float64
}

// NewLimiter builds a limiter from RATE_LIMIT_BURST and RATE_LIMIT_RPS
// environment variables, with sane defaults.
func NewLimiter() *Limiter {
	capacity := defaultCapacity
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil && v > 0 {
		capacity = v
	}
	rate := defaultRefillRate
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && v > 0 {
		rate = v
	}
	return &Limiter{
		buckets:    make(map[string]*tokenBucket),
		capacity:   capacity,
		refillRate: rate,
	}
}

// Allow consumes one token for the client, creating its bucket on first use.
func (l *Limiter) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	tb, ok := l.buckets[clientID]
	if !ok {
		tb = &tokenBucket{
			capacity:   l.capacity,
			refillRate: l.refillRate,
			tokens:     float64(l.capacity),
			lastRefill: time.Now(),
		}
		l.buckets[clientID] = tb
	}
	return tb.allow(time.Now())
}
