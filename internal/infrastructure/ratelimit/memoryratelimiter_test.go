package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_AllowUpToLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("1.2.3.4", config)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should pass", i+1)
	}

	allowed, err := limiter.Allow("1.2.3.4", config)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("1.1.1.1", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("2.2.2.2", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("1.1.1.1", config)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 1}

	_, err := limiter.Allow("1.1.1.1", config)
	require.NoError(t, err)
	require.NoError(t, limiter.Reset("1.1.1.1"))

	allowed, err := limiter.Allow("1.1.1.1", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_ZeroLimitsDisableChecks(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{}

	for i := 0; i < 50; i++ {
		allowed, err := limiter.Allow("1.1.1.1", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
