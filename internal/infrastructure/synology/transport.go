package synology

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/logging"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 16 << 20 // 16 MiB - スナップショット1枚の上限
)

// TransportConfig は上流WebAPIへのHTTPクライアントの設定
type TransportConfig struct {
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// HTTPTransport は上流へのGETを1回だけ行い、ステータスコードとMIMEタイプを検証する
// キャッシュや再試行は行わない
type HTTPTransport struct {
	httpClient *http.Client
}

func NewHTTPTransport(cfg TransportConfig) *HTTPTransport {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		// NASの自己署名証明書向け
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return NewHTTPTransportWithClient(&http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	})
}

func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{httpClient: client}
}

// Fetch は rawURL にGETし、期待したステータスコードとMIMEタイプであればボディを返す
// expectedContentType が空の場合、MIMEタイプは検証しない
func (t *HTTPTransport) Fetch(ctx context.Context, rawURL string, expectedStatus int, expectedContentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの作成に失敗しました: %w", maskURLError(err))
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, maskURLError(err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != expectedStatus {
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrUnexpectedStatus, expectedStatus, resp.StatusCode)
	}

	if expectedContentType != "" {
		mimeType := MediaType(resp.Header.Get("Content-Type"))
		if !strings.EqualFold(mimeType, expectedContentType) {
			return nil, fmt.Errorf("%w: expected %s, got %s", domain.ErrUnexpectedContentType, expectedContentType, mimeType)
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: レスポンスボディの読み取りに失敗しました: %w", domain.ErrUpstreamUnavailable, err)
	}
	if len(body) > maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return body, nil
}

// MediaType はContent-Typeヘッダーから ; 以降のパラメータを除いたMIMEタイプを返す
func MediaType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mediaType)
}

// maskURLError は *url.Error に含まれるURLからパスワードとSIDを取り除く
func maskURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{
			Op:  urlErr.Op,
			URL: logging.MaskSensitiveParams(urlErr.URL),
			Err: urlErr.Err,
		}
	}
	return err
}
