//go:generate mockgen -source=$GOFILE -destination=../mocks/usecase/mock_external_interfaces.go -package=mock_usecase
package usecase

import (
	"context"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

// Transport は上流へのGETを1回だけ行い、ステータスコードとMIMEタイプを検証する
// expectedContentType が空の場合、MIMEタイプは検証しない
type Transport interface {
	Fetch(ctx context.Context, url string, expectedStatus int, expectedContentType string) ([]byte, error)
}

type WebAPIURLGenerator interface {
	QueryURL(apiNames []string) string
	LoginURL(authPath string, credentials domain.Credentials) string
	SnapshotURL(cameraPath string, req domain.SnapshotRequest, sid domain.SessionID) string
}
