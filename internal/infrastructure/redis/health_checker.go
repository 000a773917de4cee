package redis

import (
	"context"
	"fmt"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// RedisHealthChecker はキャッシュバックエンドとしてのRedisに到達できるかを確認する
type RedisHealthChecker struct {
	client pinger
}

func NewRedisHealthChecker(client pinger) *RedisHealthChecker {
	return &RedisHealthChecker{
		client: client,
	}
}

func (c *RedisHealthChecker) Name() string {
	return "redis"
}

func (c *RedisHealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
