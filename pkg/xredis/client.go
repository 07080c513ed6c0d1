package xredis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

type Client interface {
	// MGet returns one value per key, nil for missing keys.
	MGet(ctx context.Context, keys ...string) ([]any, error)
	MSet(ctx context.Context, kv map[string]string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type client struct {
	redisClient *redis.Client
}

func NewClient(ctx context.Context) (*client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:            xcontext.Configs(ctx).Redis.Addr,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolFIFO:        false,
		PoolSize:        5,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{redisClient: redisClient}, nil
}

func (c *client) MGet(ctx context.Context, keys ...string) ([]any, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	return c.redisClient.MGet(ctx, keys...).Result()
}

func (c *client) MSet(ctx context.Context, kv map[string]string, ttl time.Duration) error {
	if len(kv) == 0 {
		return nil
	}

	pipe := c.redisClient.Pipeline()
	for k, v := range kv {
		pipe.Set(ctx, k, v, ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (c *client) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := c.redisClient.Del(ctx, keys...).Err()
	if err == nil || errors.Is(err, redis.Nil) {
		return nil
	}

	return err
}

func (c *client) Close() error {
	return c.redisClient.Close()
}
