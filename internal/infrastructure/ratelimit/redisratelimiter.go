package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix scopes every limiter key so flushing or inspecting them never
// touches other data in a shared Redis instance.
const keyPrefix = "labtrace:rl"

// window pairs a span with the label used in the Redis key. Labels keep keys
// readable when operators inspect a throttled client.
type window struct {
	label string
	span  time.Duration
}

var windows = []window{
	{"minute", time.Minute},
	{"hour", time.Hour},
	{"day", 24 * time.Hour},
}

func (c RateLimitConfig) limitFor(w window) int {
	switch w.label {
	case "minute":
		return c.RequestsPerMinute
	case "hour":
		return c.RequestsPerHour
	case "day":
		return c.RequestsPerDay
	}
	return 0
}

// RedisRateLimiter implements sliding-window limits over Redis sorted sets.
// Each (key, window) pair is a set of request timestamps trimmed to the
// window span on every check.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

// Allow records the request against every configured window and admits it
// only when all of them have room. A window with a zero limit is unbounded.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error) {
	now := time.Now()

	for _, w := range windows {
		limit := config.limitFor(w)
		if limit <= 0 {
			continue
		}

		ok, err := l.admit(ctx, l.redisKey(key, w.label), w.span, limit, now)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func (l *RedisRateLimiter) admit(ctx context.Context, redisKey string, span time.Duration, limit int, now time.Time) (bool, error) {
	cutoff := strconv.FormatInt(now.Add(-span).UnixNano(), 10)
	stamp := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(stamp), Member: stamp})
	pipe.Expire(ctx, redisKey, span+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit window check: %w", err)
	}

	return count.Val() < int64(limit), nil
}

// GetRemaining reports how many requests the key has used in the window.
func (l *RedisRateLimiter) GetRemaining(ctx context.Context, key string, span time.Duration) (int64, error) {
	redisKey := l.redisKey(key, labelFor(span))
	cutoff := strconv.FormatInt(time.Now().Add(-span).UnixNano(), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	count := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit usage count: %w", err)
	}

	return count.Val(), nil
}

// Reset drops every window tracked for the key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	iter := l.client.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", keyPrefix, key), 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("delete rate limit key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan rate limit keys: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) redisKey(key, label string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, key, label)
}

func labelFor(span time.Duration) string {
	for _, w := range windows {
		if w.span == span {
			return w.label
		}
	}
	return span.String()
}
