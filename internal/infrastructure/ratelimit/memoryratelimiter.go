package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is a sliding-window limiter for deployments without
// redis. State is per process.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		attempts: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	windows := windowsFor(config)

	// keep only attempts still visible to the widest window
	widest := time.Duration(0)
	for _, w := range windows {
		if w.limit > 0 && w.duration > widest {
			widest = w.duration
		}
	}
	kept := l.attempts[key][:0]
	for _, at := range l.attempts[key] {
		if now.Sub(at) < widest {
			kept = append(kept, at)
		}
	}

	allowed := true
	for _, w := range windows {
		if w.limit <= 0 {
			continue
		}
		count := 0
		for _, at := range kept {
			if now.Sub(at) < w.duration {
				count++
			}
		}
		if count >= w.limit {
			allowed = false
		}
	}

	l.attempts[key] = append(kept, now)
	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
	return nil
}
