package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phish-analytics/internal/config/configs"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewClient(configs.Redis{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestFixedWindowLimiter_NilClientAllows(t *testing.T) {
	l := NewFixedWindowLimiter(nil, "rl:", 3, time.Minute)

	d, err := l.Allow(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 3, d.Remaining)
}

func TestFixedWindowLimiter_BlocksAfterLimit(t *testing.T) {
	c, mr := newTestClient(t)
	l := NewFixedWindowLimiter(c, "rl:", 2, time.Minute)
	ctx := context.Background()

	d, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	d, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Positive(t, d.RetryAfter)
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	assert.True(t, mr.Exists("rl:ip"))

	other, err := l.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestFixedWindowLimiter_WindowExpires(t *testing.T) {
	c, mr := newTestClient(t)
	l := NewFixedWindowLimiter(c, "rl:", 1, time.Minute)
	ctx := context.Background()

	_, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	d, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	require.False(t, d.Allowed)

	mr.FastForward(61 * time.Second)
	assert.False(t, mr.Exists("rl:ip"))

	d, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestFixedWindowLimiter_RedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	c := NewClient(configs.Redis{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	l := NewFixedWindowLimiter(c, "rl:", 1, time.Minute)
	mr.Close()

	_, err = l.Allow(context.Background(), "ip")
	assert.Error(t, err)
}

func TestClient_Ping(t *testing.T) {
	c, _ := newTestClient(t)
	assert.NoError(t, c.Ping(context.Background()))
}
