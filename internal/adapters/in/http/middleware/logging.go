// Package middleware provides echo middleware for the HTTP adapters.
package middleware

import (
	"net"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// fieldRequestID carries the id set by echo's RequestID middleware.
const fieldRequestID = "request_id"

// ContextLogger attaches log to the request context, tagged with the request id
// set by echo's RequestID middleware.
func ContextLogger(log zerowrap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			ctx := zerowrap.WithCtx(r.Context(), log)
			ctx = zerowrap.CtxWithField(ctx, fieldRequestID, c.Response().Header().Get(echo.HeaderXRequestID))
			c.SetRequest(r.WithContext(ctx))
			return next(c)
		}
	}
}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(log zerowrap.Logger, trustedNets []*net.IPNet) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogUserAgent: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= 500 {
				event = log.Error().Err(v.Error)
			}
			event.
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str(fieldRequestID, v.RequestID).
				Str(zerowrap.FieldMethod, v.Method).
				Str("uri", v.URI).
				Str(zerowrap.FieldClientIP, ClientIP(c.Request(), trustedNets)).
				Str("user_agent", v.UserAgent).
				Int(zerowrap.FieldStatus, v.Status).
				Int64("bytes", c.Response().Size).
				Dur(zerowrap.FieldDuration, v.Latency).
				Msg("HTTP request")
			return nil
		},
	})
}
