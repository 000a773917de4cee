//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_snapshot_usecase.go -package=mock_usecase
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

// maxSnapshotAttempts は再認証を挟んだスナップショット取得の最大試行回数
const maxSnapshotAttempts = 2

type SnapshotUseCase interface {
	Execute(ctx context.Context, req domain.SnapshotRequest) (*domain.Snapshot, error)
}

type snapshotUseCaseImpl struct {
	resolver     APIResolver
	session      SessionProvider
	transport    Transport
	cacheClient  CacheClient
	keyGenerator CacheKeyGenerator
	cacheConfig  CacheConfig
	urlGenerator WebAPIURLGenerator
}

func NewSnapshotUseCase(
	resolver APIResolver,
	session SessionProvider,
	transport Transport,
	cacheClient CacheClient,
	keyGenerator CacheKeyGenerator,
	cacheConfig CacheConfig,
	urlGenerator WebAPIURLGenerator,
) SnapshotUseCase {
	return &snapshotUseCaseImpl{
		resolver:     resolver,
		session:      session,
		transport:    transport,
		cacheClient:  cacheClient,
		keyGenerator: keyGenerator,
		cacheConfig:  cacheConfig,
		urlGenerator: urlGenerator,
	}
}

// Execute はスナップショットを返す。キャッシュにあれば上流へは問い合わせない
// 取得に失敗した場合は種別を問わず1度だけ再認証して再試行する
func (u *snapshotUseCaseImpl) Execute(ctx context.Context, req domain.SnapshotRequest) (*domain.Snapshot, error) {
	cacheKey := u.keyGenerator.SnapshotKey(req)

	cached, err := u.cacheClient.Get(ctx, cacheKey)
	if err == nil {
		snapshot, snapErr := domain.NewSnapshot(cached, domain.JPEGContentType)
		if snapErr == nil {
			return snapshot, nil
		}
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		slog.WarnContext(ctx, "スナップショットキャッシュの読み取りに失敗しました", "key", cacheKey, "error", err)
	}

	info, err := u.resolver.Resolve(ctx, domain.RequiredAPINames())
	if err != nil {
		return nil, err
	}
	cameraPath, err := info.Path(domain.APINameCamera)
	if err != nil {
		return nil, err
	}

	sid, err := u.session.EnsureAuthenticated(ctx, info)
	if err != nil {
		return nil, err
	}

	var snapshot *domain.Snapshot
	for attempt := 1; ; attempt++ {
		snapshot, err = u.fetch(ctx, cameraPath, req, sid)
		if err == nil {
			break
		}
		if attempt >= maxSnapshotAttempts {
			return nil, fmt.Errorf("スナップショットの取得に失敗しました: %w", err)
		}

		slog.WarnContext(ctx, "スナップショットの取得に失敗したため再認証します",
			"camera", req.Camera().Int(),
			"profile", req.Profile().Int(),
			"attempt", attempt,
			"error", err,
		)
		sid, err = u.session.InvalidateAndReauthenticate(ctx, info)
		if err != nil {
			return nil, err
		}
	}

	if err := u.cacheClient.Set(ctx, cacheKey, snapshot.Data(), u.cacheConfig.SnapshotTTL()); err != nil {
		slog.WarnContext(ctx, "スナップショットのキャッシュに失敗しました", "key", cacheKey, "error", err)
	}

	return snapshot, nil
}

// fetch は1回分のスナップショット取得。空のボディも失敗として扱い、再認証の対象にする
func (u *snapshotUseCaseImpl) fetch(ctx context.Context, cameraPath string, req domain.SnapshotRequest, sid domain.SessionID) (*domain.Snapshot, error) {
	data, err := u.transport.Fetch(ctx, u.urlGenerator.SnapshotURL(cameraPath, req, sid), http.StatusOK, domain.JPEGContentType)
	if err != nil {
		return nil, err
	}

	snapshot, err := domain.NewSnapshot(data, domain.JPEGContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptySnapshot, err)
	}
	return snapshot, nil
}
