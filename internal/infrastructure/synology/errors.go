package synology

import (
	"fmt"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

var (
	// ErrRequestFailed は上流へのHTTPリクエスト自体が失敗した場合に返されます
	ErrRequestFailed = fmt.Errorf("%w: request failed", domain.ErrUpstreamUnavailable)
	// ErrResponseTooLarge はレスポンスボディが上限を超えた場合に返されます
	ErrResponseTooLarge = fmt.Errorf("%w: response too large", domain.ErrUpstreamUnavailable)
)
