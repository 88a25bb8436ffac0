package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/acme/autocert"

	"github.com/bnema/conanhost/internal/adapters/out/ratelimit"
	"github.com/bnema/conanhost/internal/adapters/out/telemetry"
	"github.com/bnema/conanhost/internal/adapters/out/urlmanifest"
	"github.com/bnema/conanhost/internal/usecase/auth"
	"github.com/bnema/conanhost/internal/usecase/hosted"
)

// limiterIdleTTL is how long an unused per-client limiter is kept.
const limiterIdleTTL = 10 * time.Minute

// Run loads the configuration and serves the repository until ctx is
// cancelled or SIGINT/SIGTERM is received.
func Run(ctx context.Context, configPath, version string) error {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(zerowrap.WithCtx(ctx, log), cfg, version, log)
}

func serve(ctx context.Context, cfg Config, version string, log zerowrap.Logger) error {
	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str("version", version).
		Str("addr", cfg.Server.Addr).
		Str("base_url", cfg.Server.BaseURL).
		Str("storage", cfg.Storage.Backend).
		Bool("auth", cfg.Auth.Enabled).
		Msg("starting conanhost")

	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry, version)
	if err != nil {
		return log.WrapErr(err, "failed to initialize telemetry")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(flushCtx); err != nil {
			log.Warn().Err(err).Msg("failed to flush telemetry")
		}
	}()

	metrics, err := provider.Metrics()
	if err != nil {
		return log.WrapErr(err, "failed to create metrics")
	}

	store, blobs, err := createStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close metadata store")
		}
	}()

	deps := serverDeps{
		conanSvc: hosted.NewService(store, blobs, urlmanifest.New(), cfg.Server.BaseURL),
		authSvc:  auth.NewService(buildAuthConfig(cfg)),
		metrics:  metrics,
		registry: newPrometheusRegistry(),
	}

	if cfg.RateLimit.Enabled {
		global := ratelimit.NewMemoryStore(cfg.RateLimit.GlobalRPS, cfg.RateLimit.GlobalBurst, log)
		perIP := ratelimit.NewMemoryStore(cfg.RateLimit.IPRPS, cfg.RateLimit.IPBurst, log)
		go perIP.RunSweeper(ctx, time.Minute, limiterIdleTTL)
		deps.globalLimiter = global
		deps.ipLimiter = perIP
	}

	e := newServer(cfg, deps, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- startServer(e, cfg)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	log.Info().Msg("conanhost shutdown complete")
	return nil
}

// startServer blocks serving HTTP, or HTTPS with ACME certificates when
// server.tls.auto is set.
func startServer(e *echo.Echo, cfg Config) error {
	if !cfg.Server.TLS.Auto {
		return e.Start(cfg.Server.Addr)
	}

	cacheDir := cfg.Server.TLS.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(cfg.Storage.DataDir, "autocert")
	}
	e.AutoTLSManager.Prompt = autocert.AcceptTOS
	e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.Server.TLS.Domain)
	e.AutoTLSManager.Cache = autocert.DirCache(cacheDir)
	return e.StartAutoTLS(cfg.Server.Addr)
}

func buildAuthConfig(cfg Config) auth.Config {
	return auth.Config{
		Enabled:       cfg.Auth.Enabled,
		AnonymousRead: cfg.Auth.AnonymousRead,
		Username:      cfg.Auth.Username,
		PasswordHash:  cfg.Auth.PasswordHash,
		TokenSecret:   []byte(cfg.Auth.TokenSecret),
		TokenTTL:      cfg.Auth.TokenTTL,
	}
}

func newPrometheusRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
