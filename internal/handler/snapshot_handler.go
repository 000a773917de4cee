package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
	"github.com/Gregy/synology-surveillance-get-image/internal/usecase"
)

const (
	queryCamera  = "camera"
	queryProfile = "profile"
)

// SnapshotHandlerConfig は /snapshot で受け付けるパラメータとタイムアウト
type SnapshotHandlerConfig struct {
	AllowedCameras  *domain.AllowedSet
	AllowedProfiles *domain.AllowedSet
	Timeout         time.Duration
}

func SnapshotHandler(uc usecase.SnapshotUseCase, cfg SnapshotHandlerConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := parseSnapshotRequest(c, cfg)
		if err != nil {
			slog.WarnContext(c.Request().Context(), "不正なスナップショット要求です",
				"camera", c.QueryParam(queryCamera),
				"profile", c.QueryParam(queryProfile),
				"error", err,
			)
			return SendError(c, http.StatusBadRequest, "cameraまたはprofileが不正です")
		}

		ctx := c.Request().Context()
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}

		snapshot, err := uc.Execute(ctx, req)
		if err != nil {
			status, message := snapshotErrorStatus(err)
			slog.ErrorContext(ctx, "スナップショットの取得に失敗しました",
				"camera", req.Camera().Int(),
				"profile", req.Profile().Int(),
				"status", status,
				"error", err,
			)
			return SendError(c, status, message)
		}

		c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(snapshot.Size()))
		return c.Blob(http.StatusOK, snapshot.ContentType(), snapshot.Data())
	}
}

// parseSnapshotRequest はキャッシュや上流に触れる前にパラメータを検証する
func parseSnapshotRequest(c echo.Context, cfg SnapshotHandlerConfig) (domain.SnapshotRequest, error) {
	cameraValue, err := strconv.Atoi(c.QueryParam(queryCamera))
	if err != nil || !cfg.AllowedCameras.Contains(cameraValue) {
		return domain.SnapshotRequest{}, usecase.ErrInvalidParameters
	}
	profileValue, err := strconv.Atoi(c.QueryParam(queryProfile))
	if err != nil || !cfg.AllowedProfiles.Contains(profileValue) {
		return domain.SnapshotRequest{}, usecase.ErrInvalidParameters
	}

	camera, err := domain.NewCameraID(cameraValue)
	if err != nil {
		return domain.SnapshotRequest{}, errors.Join(usecase.ErrInvalidParameters, err)
	}
	profile, err := domain.NewStreamProfile(profileValue)
	if err != nil {
		return domain.SnapshotRequest{}, errors.Join(usecase.ErrInvalidParameters, err)
	}
	return domain.NewSnapshotRequest(camera, profile), nil
}

func snapshotErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidParameters):
		return http.StatusBadRequest, "cameraまたはprofileが不正です"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "上流のWebAPIが時間内に応答しませんでした"
	case errors.Is(err, usecase.ErrDiscoveryFailed),
		errors.Is(err, usecase.ErrAuthenticationFailed),
		errors.Is(err, usecase.ErrEmptySnapshot),
		errors.Is(err, domain.ErrUnexpectedStatus),
		errors.Is(err, domain.ErrUnexpectedContentType),
		errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrAPINotFound):
		return http.StatusBadGateway, "上流のWebAPIからスナップショットを取得できませんでした"
	default:
		return http.StatusInternalServerError, "サーバー内部エラーが発生しました"
	}
}
