// Package ratelimit bounds per-client request rates with a Redis sorted-set
// sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewRedisRateLimiter allows limit requests per key within window.
func NewRedisRateLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: prefix,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	now := time.Now()
	redisKey := l.key(key)
	windowStart := now.Add(-l.window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.limit), nil
}

// Remaining reports how many requests key may still make in the current window.
func (l *RedisRateLimiter) Remaining(ctx context.Context, key string) (int64, error) {
	redisKey := l.key(key)
	windowStart := time.Now().Add(-l.window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to get remaining: %w", err)
	}

	remaining := int64(l.limit) - zcard.Val()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", l.key(key), err)
	}
	return nil
}

func (l *RedisRateLimiter) key(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.prefix, identifier)
}
