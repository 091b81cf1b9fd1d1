// Package ratelimit guards the login endpoint against credential stuffing.
// The redis implementation is shared across instances; the in-memory one
// backs single-node and test setups.
package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// LoginConfig is the default budget applied per client IP on login attempts.
var LoginConfig = RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   100,
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	Reset(key string) error
}

func windowsFor(config RateLimitConfig) []struct {
	duration time.Duration
	limit    int
} {
	return []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
	}
}
