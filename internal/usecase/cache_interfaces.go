//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_cache_interfaces.go -package=mock_usecase
package usecase

import (
	"context"
	"time"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

// NoExpiration はTTLを設定しないことを表す
const NoExpiration time.Duration = 0

type CacheKeyGenerator interface {
	APIInfoKey() string
	SessionKey() string
	SnapshotKey(req domain.SnapshotRequest) string
}

type CacheConfig interface {
	SnapshotTTL() time.Duration
}

// CacheClient は有効期限付きのキーバリューストア
// キーが存在しない、または期限切れの場合は domain.ErrCacheMiss を返す
type CacheClient interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
