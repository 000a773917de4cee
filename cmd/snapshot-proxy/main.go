package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Gregy/synology-surveillance-get-image/internal/config"
	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
	"github.com/Gregy/synology-surveillance-get-image/internal/handler"
	appMiddleware "github.com/Gregy/synology-surveillance-get-image/internal/handler/middleware"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/cache"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/logging"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/metrics"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/synology"
	"github.com/Gregy/synology-surveillance-get-image/internal/usecase"
)

const (
	readTimeout        = 30 * time.Second
	writeTimeoutMargin = 5 * time.Second
	shutdownTimeout    = 10 * time.Second
	idleTimeout        = 120 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("configuration loaded",
		"synology", cfg.Synology.String(),
		"cache_backend", cfg.Cache.Backend,
	)

	allowedCameras, err := domain.NewAllowedSet(cfg.Snapshot.AllowedCameras)
	if err != nil {
		return fmt.Errorf("snapshot.allowed_cameras: %w", err)
	}
	allowedProfiles, err := domain.NewAllowedSet(cfg.Snapshot.AllowedProfiles)
	if err != nil {
		return fmt.Errorf("snapshot.allowed_profiles: %w", err)
	}

	// 初期化処理のためHTTPリクエストコンテキストが存在しないため context.Background() を使用
	backend, err := newCacheBackend(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.close(); err != nil {
			slog.Error("failed to close cache backend", "error", err)
		}
	}()

	appMetrics := metrics.New()
	cacheClient := metrics.NewInstrumentedCache(backend.client, appMetrics)

	httpTransport := synology.NewHTTPTransport(synology.TransportConfig{
		Timeout:            cfg.Synology.Timeout,
		InsecureSkipVerify: cfg.Synology.InsecureSkipVerify,
	})
	if cfg.Synology.InsecureSkipVerify {
		slog.Warn("TLS certificate verification for the WebAPI is disabled")
	}
	transport := metrics.NewInstrumentedTransport(httpTransport, appMetrics)
	urlGenerator := synology.NewWebAPIURLGenerator(cfg.Synology.BaseURL)

	keyGenerator := cache.NewKeyGenerator(cfg.Cache.KeyPrefix)
	cacheConfig := cache.NewConfig(cfg.Snapshot.TTL)
	credentials := domain.NewCredentials(cfg.Synology.Account, cfg.Synology.Password)

	resolver := usecase.NewAPIDiscoveryUseCase(transport, cacheClient, keyGenerator, urlGenerator)
	session := usecase.NewSessionManager(transport, cacheClient, keyGenerator, urlGenerator, credentials)
	snapshotUC := usecase.NewSnapshotUseCase(resolver, session, transport, cacheClient, keyGenerator, cacheConfig, urlGenerator)

	readinessUC := usecase.NewReadinessUseCase(
		backend.healthChecker,
		synology.NewWebAPIHealthChecker(httpTransport, urlGenerator),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = appMiddleware.CustomHTTPErrorHandler

	ipExtractor, err := buildIPExtractor(cfg.Server.TrustedProxyCIDRs)
	if err != nil {
		return err
	}
	e.IPExtractor = ipExtractor

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", logging.MaskSensitiveParams(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	e.GET("/healthz", handler.HealthHandler)

	readyzHandler := handler.NewReadyzHandler(readinessUC)
	e.GET("/readyz", readyzHandler.Handle)

	e.GET("/metrics", echo.WrapHandler(appMetrics.Handler()))

	e.GET("/snapshot", handler.SnapshotHandler(snapshotUC, handler.SnapshotHandlerConfig{
		AllowedCameras:  allowedCameras,
		AllowedProfiles: allowedProfiles,
		Timeout:         cfg.Server.RequestTimeout,
	}))

	port := strconv.Itoa(cfg.Server.Port)
	server := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  readTimeout,
		WriteTimeout: cfg.Server.RequestTimeout + writeTimeoutMargin,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

// buildIPExtractor は設定に基づいてIPエクストラクタを構築する。
// 信頼するプロキシのCIDRが指定されている場合、そのCIDRからのX-Forwarded-Forヘッダーのみを信頼する。
func buildIPExtractor(trustedProxyCIDRs []string) (echo.IPExtractor, error) {
	if len(trustedProxyCIDRs) == 0 {
		slog.Info("trusted proxy CIDRs not configured, using direct IP extraction")
		return echo.ExtractIPDirect(), nil
	}

	trustOptions := make([]echo.TrustOption, 0, len(trustedProxyCIDRs))
	for _, cidr := range trustedProxyCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy CIDR %q: %w", cidr, err)
		}
		trustOptions = append(trustOptions, echo.TrustIPRange(ipNet))
	}

	slog.Info("trusted proxy CIDRs configured", "cidrs", trustedProxyCIDRs)
	return echo.ExtractIPFromXFFHeader(trustOptions...), nil
}
