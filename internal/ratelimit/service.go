// Package ratelimit throttles authenticated callers with a Redis sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisclient "relance-server/internal/clients/redis"
	"relance-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

const window = time.Minute

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Limiter allows up to limit requests per subject in any one minute window
type Limiter struct {
	redis  *redisclient.Client
	prefix string
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewLimiter creates a limiter. Keys are "rl:<prefix>:<subject>". A disabled
// Redis client or a non-positive limit lets every request through.
func NewLimiter(client *redisclient.Client, prefix string, limit int, logger *observability.Logger) *Limiter {
	return &Limiter{
		redis:  client,
		prefix: prefix,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the limiter's time source
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Allow records one request for subject and reports whether it fits the window
func (l *Limiter) Allow(ctx context.Context, subject string) (Result, error) {
	now := l.now()
	if l.limit <= 0 || !l.redis.IsEnabled() {
		return Result{Allowed: true, Limit: l.limit, ResetAt: now.Add(window)}, nil
	}

	client := l.redis.GetClient()
	key := fmt.Sprintf("rl:%s:%s", l.prefix, subject)
	windowStart := now.Add(-window)

	if err := client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixMilli(), 10)).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := client.ZCard(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= l.limit {
		resetAt := now.Add(window)
		oldest, err := client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        l.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// Scored by millisecond, member by nanosecond so bursts don't collapse
	member := redis.Z{Score: float64(now.UnixMilli()), Member: strconv.FormatInt(now.UnixNano(), 10)}
	if err := client.ZAdd(ctx, key, member).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}
	if err := client.Expire(ctx, key, 2*window).Err(); err != nil {
		l.logger.Warn(ctx, "failed to set expiration on rate limit key")
	}

	return Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
