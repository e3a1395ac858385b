// Package ratelimit provides a per-key token-bucket limiter. The web layer
// keys it by client address to slow down repeated login attempts.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Cleanup cadence for idle buckets.
const (
	cleanupInterval = 5 * time.Minute
	idleAfter       = 10 * time.Minute
)

// KeyedLimiter manages an independent rate limiter per key.
type KeyedLimiter struct {
	mu       sync.Mutex
	entries  map[string]*entry
	limit    rate.Limit
	burst    int
	done     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a keyed limiter allowing rps requests per second with the
// given burst per key.
func New(rps float64, burst int) *KeyedLimiter {
	kl := &KeyedLimiter{
		entries: make(map[string]*entry),
		limit:   rate.Limit(rps),
		burst:   burst,
		done:    make(chan struct{}),
	}
	go kl.cleanup()
	return kl
}

// Allow reports whether a request for key may proceed now.
func (kl *KeyedLimiter) Allow(key string) bool {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	e, ok := kl.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(kl.limit, kl.burst)}
		kl.entries[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter.Allow()
}

// Stop ends the background cleanup goroutine.
func (kl *KeyedLimiter) Stop() {
	kl.stopOnce.Do(func() { close(kl.done) })
}

// cleanup drops buckets that have been idle long enough to be full again.
func (kl *KeyedLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-kl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-idleAfter)
			kl.mu.Lock()
			for key, e := range kl.entries {
				if e.lastSeen.Before(cutoff) {
					delete(kl.entries, key)
				}
			}
			kl.mu.Unlock()
		}
	}
}
