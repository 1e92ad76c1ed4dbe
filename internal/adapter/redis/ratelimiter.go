package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"phish-analytics/internal/core/port"
)

// allowScript increments the window counter and arms its expiry on the first
// hit. Returns {count, ttl_ms}.
var allowScript = goredis.NewScript(`
local c = redis.call("INCR", KEYS[1])
if c == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {c, ttl}
`)

// FixedWindowLimiter implements port.RateLimiter with one Redis counter per
// key. The counter expires with its window, so idle keys are evicted by
// Redis itself.
type FixedWindowLimiter struct {
	rdb    *goredis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter allows limit hits per key per window. A nil client
// allows everything.
func NewFixedWindowLimiter(c *Client, prefix string, limit int, window time.Duration) *FixedWindowLimiter {
	if window <= 0 {
		window = time.Minute
	}
	l := &FixedWindowLimiter{prefix: prefix, limit: limit, window: window}
	if c != nil {
		l.rdb = c.rdb
	}
	return l
}

var _ port.RateLimiter = (*FixedWindowLimiter)(nil)

// Allow counts one hit for key.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (port.RateDecision, error) {
	if l.limit <= 0 || l.rdb == nil {
		return port.RateDecision{Allowed: true, Limit: l.limit, Remaining: l.limit}, nil
	}

	res, err := allowScript.Run(ctx, l.rdb, []string{l.prefix + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return port.RateDecision{}, fmt.Errorf("ratelimit redis eval: %w", err)
	}
	arr, ok := res.([]any)
	if !ok || len(arr) != 2 {
		return port.RateDecision{}, fmt.Errorf("ratelimit redis eval: unexpected result %T", res)
	}
	count, ok1 := arr[0].(int64)
	ttlMs, ok2 := arr[1].(int64)
	if !ok1 || !ok2 {
		return port.RateDecision{}, fmt.Errorf("ratelimit redis eval: unexpected result %v", arr)
	}

	d := port.RateDecision{
		Allowed:   int(count) <= l.limit,
		Limit:     l.limit,
		Remaining: max(0, l.limit-int(count)),
	}
	if !d.Allowed {
		d.RetryAfter = l.window
		if ttlMs > 0 {
			d.RetryAfter = time.Duration(ttlMs) * time.Millisecond
		}
	}
	return d, nil
}
