package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"phish-analytics/internal/config/configs"
)

// Client wraps the go-redis client used for rate-limit counters.
type Client struct {
	rdb *goredis.Client
}

// NewClient builds a client from cfg. It does not dial; call Ping to check
// connectivity.
func NewClient(cfg configs.Redis) *Client {
	return &Client{
		rdb: goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Ping checks connectivity with a short timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
