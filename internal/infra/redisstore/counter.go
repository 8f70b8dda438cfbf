package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Counter is a fixed-window hit counter backed by Redis.
type Counter struct {
	client *redis.Client
	prefix string
}

func New(url, prefix string) (*Counter, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Counter{client: redis.NewClient(opts), prefix: prefix}, nil
}

func (c *Counter) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Incr bumps key and returns the hits in the current window. The window
// starts with the first hit. A key left without a TTL, because an earlier
// EXPIRE was lost, gets one on the next hit.
func (c *Counter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	k := c.prefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	if _, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		ttl = p.TTL(ctx, k)
		return nil
	}); err != nil {
		return 0, err
	}

	n := incr.Val()
	if ttl.Val() < 0 {
		if err := c.client.Expire(ctx, k, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *Counter) Close() error {
	return c.client.Close()
}
