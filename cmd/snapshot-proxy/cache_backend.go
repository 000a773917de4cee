package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gregy/synology-surveillance-get-image/internal/config"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/filecache"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/redis"
	"github.com/Gregy/synology-surveillance-get-image/internal/usecase"
)

type cacheBackend struct {
	client        usecase.CacheClient
	healthChecker usecase.HealthChecker
	close         func() error
}

// newCacheBackend は cache.backend の設定に応じてキャッシュの保存先を選ぶ
func newCacheBackend(ctx context.Context, cfg *config.Config) (*cacheBackend, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisConn, err := redis.NewRedisConnection(ctx, redis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		client := redis.NewRedisClient(redisConn)
		slog.Info("Redis connection established", "redis", cfg.Redis.String())
		return &cacheBackend{
			client:        client,
			healthChecker: redis.NewRedisHealthChecker(client),
			close:         client.Close,
		}, nil
	case config.CacheBackendFile:
		store := filecache.NewFileStore(cfg.Cache.Dir)
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("キャッシュディレクトリを利用できません: %w", err)
		}
		slog.Info("file cache initialized", "dir", cfg.Cache.Dir)
		return &cacheBackend{
			client:        store,
			healthChecker: filecache.NewFileStoreHealthChecker(store),
			close:         func() error { return nil },
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidCacheBackend, cfg.Cache.Backend)
	}
}
