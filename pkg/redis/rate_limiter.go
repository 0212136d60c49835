package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiterOptions represents options for fixed-window rate limiting
type RateLimiterOptions struct {
	// RequestsPerMinute is the maximum number of requests per key per minute
	RequestsPerMinute int
	// Namespace prefixes the counter keys
	Namespace string
}

// NewRateLimiterOptions creates rate limiter options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		RequestsPerMinute: 60,
		Namespace:         "",
	}
}

// WithRequestsPerMinute sets the per-minute request budget
func (rlo *RateLimiterOptions) WithRequestsPerMinute(max int) *RateLimiterOptions {
	if max < 1 {
		panic(fmt.Sprintf("invalid requests per minute: %d, must be positive", max))
	}
	rlo.RequestsPerMinute = max
	return rlo
}

// WithNamespace sets the namespace for counter keys
func (rlo *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	rlo.Namespace = namespace
	return rlo
}

// RateLimiter enforces a fixed one-minute window per key, shared across
// instances through Redis.
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) *RateLimiter {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	return &RateLimiter{client: client, opts: opts}
}

// Allow reports whether the key still has budget in the current window.
// The first hit of a window creates the counter with a one-minute TTL.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := time.Now().Unix() / 60
	counterKey := rl.buildKey(key, window)

	count, err := rl.client.Incr(ctx, counterKey)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, counterKey, time.Minute); err != nil {
			return false, fmt.Errorf("failed to set rate limit window TTL: %w", err)
		}
	}

	return count <= int64(rl.opts.RequestsPerMinute), nil
}

// buildKey constructs the window counter key using namespace::key::window format
func (rl *RateLimiter) buildKey(key string, window int64) string {
	if rl.opts.Namespace != "" {
		return fmt.Sprintf("%s::%s::%d", rl.opts.Namespace, key, window)
	}
	return fmt.Sprintf("%s::%d", key, window)
}
