package synology

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

type fetcher interface {
	Fetch(ctx context.Context, url string, expectedStatus int, expectedContentType string) ([]byte, error)
}

// WebAPIHealthChecker は上流のSYNO.API.Infoに到達できるかを確認する
type WebAPIHealthChecker struct {
	transport    fetcher
	urlGenerator *WebAPIURLGenerator
}

func NewWebAPIHealthChecker(transport fetcher, urlGenerator *WebAPIURLGenerator) *WebAPIHealthChecker {
	return &WebAPIHealthChecker{
		transport:    transport,
		urlGenerator: urlGenerator,
	}
}

func (c *WebAPIHealthChecker) Name() string {
	return "synology"
}

func (c *WebAPIHealthChecker) Check(ctx context.Context) error {
	if _, err := c.transport.Fetch(ctx, c.urlGenerator.QueryURL([]string{domain.APINameInfo}), http.StatusOK, ""); err != nil {
		return fmt.Errorf("synology health check failed: %w", err)
	}
	return nil
}
