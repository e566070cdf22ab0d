package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RegistrationLimits throttles the preview and confirm endpoints per client.
// Confirm retries happen server-side within one request, so the limit counts
// registrations, not allocator attempts.
var RegistrationLimits = RateLimitConfig{
	RequestsPerMinute: 30,
	RequestsPerHour:   300,
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	GetRemaining(ctx context.Context, key string, span time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
