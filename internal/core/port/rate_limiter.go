package port

import (
	"context"
	"time"
)

// RateLimiter counts hits per key inside an expiring window. Counters are
// owned by the implementation and evicted when their window ends.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateDecision, error)
}

type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}
