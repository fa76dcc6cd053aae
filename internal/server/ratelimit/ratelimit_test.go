package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	now := time.Now()
	tb := &tokenBucket{capacity: 3, refillRate: 0, tokens: 3, lastRefill: now}

	for i := 0; i < 3; i++ {
		assert.True(t, tb.allow(now), "request %d should pass", i)
	}
	assert.False(t, tb.allow(now))
}

func TestTokenBucket_Refills(t *testing.T) {
	now := time.Now()
	tb := &tokenBucket{capacity: 2, refillRate: 1.0, tokens: 0, lastRefill: now}

	assert.False(t, tb.allow(now))
	assert.True(t, tb.allow(now.Add(1500*time.Millisecond)))
}

func TestTokenBucket_CapsAtCapacity(t *testing.T) {
	now := time.Now()
	tb := &tokenBucket{capacity: 2, refillRate: 100.0, tokens: 0, lastRefill: now}

	later := now.Add(time.Minute)
	assert.True(t, tb.allow(later))
	assert.True(t, tb.allow(later))
	assert.False(t, tb.allow(later))
}

func TestLimiter_SeparatesClients(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "1")
	t.Setenv("RATE_LIMIT_RPS", "0.001")

	l := NewLimiter()
	require.True(t, l.Allow("client-a"))
	assert.False(t, l.Allow("client-a"))
	assert.True(t, l.Allow("client-b"))
}
