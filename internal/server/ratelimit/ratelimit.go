// Package ratelimit throttles API clients using per-client token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to its burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) refillLocked(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refillLocked(time.Now())
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

func (tb *tokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refillLocked(now)

	remaining = int(tb.tokens)
	if tb.tokens < float64(tb.capacity) {
		needed := float64(tb.capacity) - tb.tokens
		resetTime = now.Add(time.Duration(needed / tb.refillRate * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

// Info reports a client's rate limit state for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter settings. A zero Limit disables limiting.
type Config struct {
	Limit           int           // Requests per window
	Window          time.Duration // Refill window
	Burst           int           // Bucket capacity; defaults to Limit
	CleanupInterval time.Duration // Idle bucket eviction cadence
}

// DefaultConfig allows a generous request rate suited to workflow submissions.
func DefaultConfig() Config {
	return Config{
		Limit:           120,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// Limiter tracks one token bucket per client.
type Limiter struct {
	mu         sync.RWMutex
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time
	config     Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter builds a limiter and starts its idle bucket cleanup.
func NewLimiter(config Config) *Limiter {
	if config.Burst <= 0 {
		config.Burst = config.Limit
	}
	l := &Limiter{
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
		config:     config,
	}
	if config.Limit > 0 && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether a request from clientID may proceed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.config.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.getBucket(clientID)

	l.mu.Lock()
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(resetTime), 0)
	}
	return allowed, Info{
		Allowed:    allowed,
		Limit:      l.config.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(clientID string) *tokenBucket {
	l.mu.RLock()
	bucket, exists := l.buckets[clientID]
	l.mu.RUnlock()
	if exists {
		return bucket
	}

	refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
	bucket = newTokenBucket(l.config.Burst, refillRate)

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, exists := l.buckets[clientID]; exists {
		return existing
	}
	l.buckets[clientID] = bucket
	return bucket
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictIdle drops buckets untouched for over an hour.
func (l *Limiter) evictIdle() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for clientID, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, clientID)
			delete(l.lastAccess, clientID)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
