package service

import (
	"sync"
	"time"
)

// TokenBlacklist holds revoked bearer tokens for the remainder of their
// natural lifetime. Contains is a pure presence check; a stale entry reads as
// revoked until the next sweep, which errs on the safe side.
type TokenBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time

	stopOnce sync.Once
	done     chan struct{}
}

// NewTokenBlacklist starts the owning sweep goroutine; callers must Stop it on
// shutdown.
func NewTokenBlacklist(sweepInterval time.Duration) *TokenBlacklist {
	b := &TokenBlacklist{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}

	go b.sweepLoop(sweepInterval)

	return b
}

func (b *TokenBlacklist) Add(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	b.mu.Lock()
	b.entries[token] = time.Now().Add(ttl)
	b.mu.Unlock()
}

func (b *TokenBlacklist) Contains(token string) bool {
	b.mu.RLock()
	_, ok := b.entries[token]
	b.mu.RUnlock()
	return ok
}

func (b *TokenBlacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

func (b *TokenBlacklist) Stop() {
	b.stopOnce.Do(func() {
		close(b.done)
	})
}

func (b *TokenBlacklist) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.sweep(time.Now())
		case <-b.done:
			return
		}
	}
}

func (b *TokenBlacklist) sweep(now time.Time) {
	b.mu.Lock()
	for token, expiry := range b.entries {
		if now.After(expiry) {
			delete(b.entries, token)
		}
	}
	b.mu.Unlock()
}
