// Package ratelimit provides a per-client token bucket used to throttle
// login attempts against the single shared-secret gate.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of requests and refills at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (tb *tokenBucket) allow(now time.Time) bool {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks one bucket per client identifier.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	capacity   int
	refillRate float64
	lastSweep  time.Time
}

// NewLimiter creates a limiter allowing a burst of capacity attempts per
// client, refilling at refillRate tokens per second.
func NewLimiter(capacity int, refillRate float64) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*tokenBucket),
		capacity:   capacity,
		refillRate: refillRate,
		lastSweep:  time.Now(),
	}
}

// Allow reports whether the client may make another attempt now.
func (l *Limiter) Allow(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	tb, ok := l.buckets[clientID]
	if !ok {
		tb = &tokenBucket{
			capacity:   l.capacity,
			refillRate: l.refillRate,
			tokens:     float64(l.capacity),
			lastRefill: now,
		}
		l.buckets[clientID] = tb
	}
	return tb.allow(now)
}

// sweep drops buckets that have been idle long enough to be full again.
// Running it inline keeps the limiter free of background goroutines.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < 5*time.Minute {
		return
	}
	l.lastSweep = now

	for id, tb := range l.buckets {
		idle := now.Sub(tb.lastRefill)
		if idle.Seconds()*l.refillRate >= float64(l.capacity) {
			delete(l.buckets, id)
		}
	}
}
