// Package filecache はローカルディレクトリを使ったキャッシュバックエンドを提供する
// 1キー1ファイルで保存し、書き込みは一時ファイルからのrenameで置き換える
package filecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newmo-oss/ctxtime"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

const dirPerm = 0o700

type entry struct {
	Value     []byte     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (e entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// FileStore はキーごとにJSONファイルを書き出すキャッシュ
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Get は期限内の値を返す。存在しない、または期限切れの場合は domain.ErrCacheMiss を返す
func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path := f.pathForKey(key)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("キャッシュファイルの読み込みに失敗しました: %w", err)
	}

	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("キャッシュファイルのデコードに失敗しました: %w", err)
	}

	if e.expired(ctxtime.Now(ctx)) {
		// 同時に書き込まれた新しいエントリを消すことがあるが、次の読み取りがミスになるだけ
		_ = removeIfExists(path)
		return nil, domain.ErrCacheMiss
	}

	return e.Value, nil
}

// Set は値を保存する。ttl が0の場合は期限なし
func (f *FileStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{Value: value}
	if ttl > 0 {
		expiresAt := ctxtime.Now(ctx).Add(ttl)
		e.ExpiresAt = &expiresAt
	}

	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("キャッシュエントリのエンコードに失敗しました: %w", err)
	}

	if err := f.writeAtomic(f.pathForKey(key), b); err != nil {
		return fmt.Errorf("キャッシュファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}

// Delete はキーを削除する。存在しないキーの削除は成功扱い
func (f *FileStore) Delete(ctx context.Context, key string) error {
	if err := removeIfExists(f.pathForKey(key)); err != nil {
		return fmt.Errorf("キャッシュファイルの削除に失敗しました: %w", err)
	}
	return nil
}

func (f *FileStore) GetJSON(ctx context.Context, key string, dest interface{}) error {
	b, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("JSONデシリアライズに失敗しました: %w", err)
	}
	return nil
}

func (f *FileStore) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("JSONシリアライズに失敗しました: %w", err)
	}
	return f.Set(ctx, key, b, ttl)
}

// Ping はキャッシュディレクトリが作成・書き込み可能かを確認する
func (f *FileStore) Ping(ctx context.Context) error {
	if err := os.MkdirAll(f.baseDir, dirPerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.baseDir, ".ping.*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	_ = tmp.Close()
	return os.Remove(name)
}

func (f *FileStore) writeAtomic(dst string, value []byte) error {
	if err := os.MkdirAll(f.baseDir, dirPerm); err != nil {
		return err
	}

	// 同一ディレクトリの一時ファイルに書いてからrenameする
	tmp, err := os.CreateTemp(f.baseDir, ".entry.*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(value); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, dst); err != nil {
		if errors.Is(err, os.ErrExist) || errors.Is(err, os.ErrPermission) {
			_ = os.Remove(dst)
			return os.Rename(tmpName, dst)
		}
		return err
	}
	return nil
}

// pathForKey はキーをsha256でハッシュ化したファイル名を返す
// キーに含まれる記号やパス区切りがファイル名に現れないようにする
func (f *FileStore) pathForKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(f.baseDir, hex.EncodeToString(sum[:])+".json")
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
