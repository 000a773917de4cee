//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_session_usecase.go -package=mock_usecase
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

// SessionProvider はWebAPIのセッション(SID)のライフサイクルを管理する
// info は呼び出し側が解決済みのAPI情報で、ログインが必要な場合に認証APIのパスとして使う
type SessionProvider interface {
	EnsureAuthenticated(ctx context.Context, info domain.APIInfo) (domain.SessionID, error)
	InvalidateAndReauthenticate(ctx context.Context, info domain.APIInfo) (domain.SessionID, error)
}

type sessionManagerImpl struct {
	transport    Transport
	cacheClient  CacheClient
	keyGenerator CacheKeyGenerator
	urlGenerator WebAPIURLGenerator
	credentials  domain.Credentials
}

func NewSessionManager(
	transport Transport,
	cacheClient CacheClient,
	keyGenerator CacheKeyGenerator,
	urlGenerator WebAPIURLGenerator,
	credentials domain.Credentials,
) SessionProvider {
	return &sessionManagerImpl{
		transport:    transport,
		cacheClient:  cacheClient,
		keyGenerator: keyGenerator,
		urlGenerator: urlGenerator,
		credentials:  credentials,
	}
}

// EnsureAuthenticated はキャッシュ済みのSIDがあればそれを返し、なければログインする
// SIDにはTTLを設定せず、上流に拒否された時点で InvalidateAndReauthenticate により破棄される
func (m *sessionManagerImpl) EnsureAuthenticated(ctx context.Context, info domain.APIInfo) (domain.SessionID, error) {
	cacheKey := m.keyGenerator.SessionKey()

	cached, err := m.cacheClient.Get(ctx, cacheKey)
	if err == nil {
		sid, sidErr := domain.NewSessionID(string(cached))
		if sidErr == nil {
			return sid, nil
		}
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		slog.WarnContext(ctx, "セッションキャッシュの読み取りに失敗しました", "key", cacheKey, "error", err)
	}

	return m.login(ctx, info, cacheKey)
}

// InvalidateAndReauthenticate はキャッシュ済みのSIDを削除してから再ログインする
func (m *sessionManagerImpl) InvalidateAndReauthenticate(ctx context.Context, info domain.APIInfo) (domain.SessionID, error) {
	cacheKey := m.keyGenerator.SessionKey()
	if err := m.cacheClient.Delete(ctx, cacheKey); err != nil {
		return domain.SessionID{}, fmt.Errorf("%w: セッションの破棄に失敗しました: %v", ErrCacheOperation, err)
	}

	return m.EnsureAuthenticated(ctx, info)
}

func (m *sessionManagerImpl) login(ctx context.Context, info domain.APIInfo, cacheKey string) (domain.SessionID, error) {
	authPath, err := info.Path(domain.APINameAuth)
	if err != nil {
		return domain.SessionID{}, err
	}

	body, err := m.transport.Fetch(ctx, m.urlGenerator.LoginURL(authPath, m.credentials), http.StatusOK, anyContentType)
	if err != nil {
		return domain.SessionID{}, fmt.Errorf("ログインリクエストに失敗しました: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.SessionID{}, fmt.Errorf("%w: レスポンスのパースに失敗しました: %v", ErrAuthenticationFailed, err)
	}
	if !resp.Success {
		return domain.SessionID{}, fmt.Errorf("%w: %s", ErrAuthenticationFailed, describeWebAPIError(resp.Error))
	}

	sid, err := domain.NewSessionID(resp.Data.SID)
	if err != nil {
		return domain.SessionID{}, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	if err := m.cacheClient.Set(ctx, cacheKey, []byte(sid.String()), NoExpiration); err != nil {
		slog.WarnContext(ctx, "セッションのキャッシュに失敗しました", "key", cacheKey, "error", err)
	}

	slog.InfoContext(ctx, "WebAPIにログインしました", "account", m.credentials.Account())
	return sid, nil
}
