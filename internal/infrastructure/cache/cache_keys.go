// Package cache はキャッシュキーとTTLの定義をまとめる
// キーの組み立てはすべてこのパッケージで行い、バックエンド間で同じキーを使う
package cache

import (
	"time"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

const (
	// DefaultKeyPrefix は全キーに付与される既定のプレフィックス
	DefaultKeyPrefix = "synology:"

	// APIInfoKeyName はAPIディスカバリ結果のキー
	// Format: {prefix}APIInfo
	APIInfoKeyName = "APIInfo"

	// SessionKeyName はSIDのキー
	// Format: {prefix}SID
	SessionKeyName = "SID"

	// SnapshotKeyPrefix はスナップショットのキーのプレフィックス
	// Format: {prefix}Snap_{camera}_{profile}
	SnapshotKeyPrefix = "Snap_"
)

// DefaultSnapshotTTL はスナップショットの既定の有効期限
const DefaultSnapshotTTL = 10 * time.Second

type KeyGenerator struct {
	prefix string
}

func NewKeyGenerator(prefix string) *KeyGenerator {
	return &KeyGenerator{prefix: prefix}
}

func (g *KeyGenerator) APIInfoKey() string {
	return g.prefix + APIInfoKeyName
}

func (g *KeyGenerator) SessionKey() string {
	return g.prefix + SessionKeyName
}

func (g *KeyGenerator) SnapshotKey(req domain.SnapshotRequest) string {
	return g.prefix + SnapshotKeyPrefix + req.SlotName()
}

// Config はキャッシュの有効期限設定
type Config struct {
	snapshotTTL time.Duration
}

// NewConfig は Config を生成する。snapshotTTL が0以下の場合は既定値を使う
func NewConfig(snapshotTTL time.Duration) *Config {
	if snapshotTTL <= 0 {
		snapshotTTL = DefaultSnapshotTTL
	}
	return &Config{snapshotTTL: snapshotTTL}
}

func (c *Config) SnapshotTTL() time.Duration {
	return c.snapshotTTL
}
