//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_api_discovery_usecase.go -package=mock_usecase
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

// APIResolver はAPI名を上流の相対パスに解決する
type APIResolver interface {
	Resolve(ctx context.Context, apiNames []string) (domain.APIInfo, error)
}

type apiDiscoveryUseCaseImpl struct {
	transport    Transport
	cacheClient  CacheClient
	keyGenerator CacheKeyGenerator
	urlGenerator WebAPIURLGenerator
}

func NewAPIDiscoveryUseCase(
	transport Transport,
	cacheClient CacheClient,
	keyGenerator CacheKeyGenerator,
	urlGenerator WebAPIURLGenerator,
) APIResolver {
	return &apiDiscoveryUseCaseImpl{
		transport:    transport,
		cacheClient:  cacheClient,
		keyGenerator: keyGenerator,
		urlGenerator: urlGenerator,
	}
}

// Resolve はキャッシュにAPI情報があればそれを検証せずに返す
// キャッシュにない場合はSYNO.API.Infoに問い合わせ、結果を有効期限なしで保存する
func (u *apiDiscoveryUseCaseImpl) Resolve(ctx context.Context, apiNames []string) (domain.APIInfo, error) {
	cacheKey := u.keyGenerator.APIInfoKey()

	var cached map[string]domain.APIEntry
	err := u.cacheClient.GetJSON(ctx, cacheKey, &cached)
	if err == nil {
		return domain.NewAPIInfo(cached), nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		slog.WarnContext(ctx, "API情報キャッシュの読み取りに失敗しました", "key", cacheKey, "error", err)
	}

	body, err := u.transport.Fetch(ctx, u.urlGenerator.QueryURL(apiNames), http.StatusOK, anyContentType)
	if err != nil {
		return domain.APIInfo{}, fmt.Errorf("API情報の取得に失敗しました: %w", err)
	}

	var resp apiInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.APIInfo{}, fmt.Errorf("%w: レスポンスのパースに失敗しました: %v", ErrDiscoveryFailed, err)
	}
	if !resp.Success {
		return domain.APIInfo{}, fmt.Errorf("%w: %s", ErrDiscoveryFailed, describeWebAPIError(resp.Error))
	}

	info := domain.NewAPIInfo(resp.Data)
	if err := u.cacheClient.SetJSON(ctx, cacheKey, info.Entries(), NoExpiration); err != nil {
		slog.WarnContext(ctx, "API情報のキャッシュに失敗しました", "key", cacheKey, "error", err)
	}

	slog.InfoContext(ctx, "API情報を取得しました", "apis", apiNames)
	return info, nil
}
