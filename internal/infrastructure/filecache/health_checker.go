package filecache

import (
	"context"
	"fmt"
)

// FileStoreHealthChecker はキャッシュディレクトリに書き込めるかを確認する
type FileStoreHealthChecker struct {
	store *FileStore
}

func NewFileStoreHealthChecker(store *FileStore) *FileStoreHealthChecker {
	return &FileStoreHealthChecker{store: store}
}

func (c *FileStoreHealthChecker) Name() string {
	return "filecache"
}

func (c *FileStoreHealthChecker) Check(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("filecache health check failed: %w", err)
	}
	return nil
}
