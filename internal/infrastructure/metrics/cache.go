package metrics

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/cache"
	"github.com/Gregy/synology-surveillance-get-image/internal/usecase"
)

const (
	kindAPIInfo  = "api_info"
	kindSession  = "session"
	kindSnapshot = "snapshot"
	kindOther    = "other"
)

// InstrumentedCache はキャッシュの参照結果をエントリ種別ごとに数える
type InstrumentedCache struct {
	next    usecase.CacheClient
	metrics *Metrics
}

func NewInstrumentedCache(next usecase.CacheClient, m *Metrics) *InstrumentedCache {
	return &InstrumentedCache{next: next, metrics: m}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.next.Get(ctx, key)
	c.observe(key, err)
	return value, err
}

func (c *InstrumentedCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	err := c.next.GetJSON(ctx, key, dest)
	c.observe(key, err)
	return err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.next.Set(ctx, key, value, ttl)
}

func (c *InstrumentedCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.next.SetJSON(ctx, key, value, ttl)
}

func (c *InstrumentedCache) Delete(ctx context.Context, key string) error {
	return c.next.Delete(ctx, key)
}

func (c *InstrumentedCache) observe(key string, err error) {
	result := resultHit
	switch {
	case errors.Is(err, domain.ErrCacheMiss):
		result = resultMiss
	case err != nil:
		result = resultError
	}
	c.metrics.cacheRequests.WithLabelValues(keyKind(key), result).Inc()
}

func keyKind(key string) string {
	switch {
	case strings.HasSuffix(key, cache.APIInfoKeyName):
		return kindAPIInfo
	case strings.HasSuffix(key, cache.SessionKeyName):
		return kindSession
	case strings.Contains(key, cache.SnapshotKeyPrefix):
		return kindSnapshot
	default:
		return kindOther
	}
}
