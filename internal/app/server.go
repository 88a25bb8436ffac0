package app

import (
	"net/http"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/conanhost/internal/adapters/in/http/conan"
	"github.com/bnema/conanhost/internal/adapters/in/http/middleware"
	"github.com/bnema/conanhost/internal/adapters/out/telemetry"
	"github.com/bnema/conanhost/internal/boundaries/in"
	"github.com/bnema/conanhost/internal/boundaries/out"
)

// serverDeps are the services and adapters the HTTP server is built from.
type serverDeps struct {
	conanSvc      in.ConanService
	authSvc       in.AuthService
	globalLimiter out.RateLimiter
	ipLimiter     out.RateLimiter
	metrics       *telemetry.Metrics
	registry      *prometheus.Registry
}

// newServer builds the echo instance serving the Conan API, /healthz and /metrics.
func newServer(cfg Config, deps serverDeps, log zerowrap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	trustedNets := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.ContextLogger(log))
	e.Use(middleware.RequestLogger(log, trustedNets))
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str(zerowrap.FieldPath, c.Request().URL.Path).
				Err(err).
				Bytes("stack", stack).
				Msg("panic recovered")
			return err
		},
	}))
	e.Use(middleware.SecurityHeaders())
	if cfg.Server.BodyLimit != "" {
		e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  ConfigName,
		Subsystem:  "http",
		Registerer: deps.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/healthz"
		},
	}))

	var onReject func(echo.Context)
	if deps.metrics != nil {
		onReject = func(c echo.Context) {
			deps.metrics.RateLimited.Add(c.Request().Context(), 1)
		}
	}
	e.Use(middleware.RateLimit(deps.globalLimiter, deps.ipLimiter, trustedNets, onReject))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.registry}))

	handler := conan.NewHandler(deps.conanSvc, deps.authSvc)
	handler.SetMetrics(deps.metrics)
	handler.RegisterRoutes(e)

	return e
}
