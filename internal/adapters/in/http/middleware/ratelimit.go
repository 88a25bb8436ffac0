package middleware

import (
	"net"
	"net/http"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"

	"github.com/bnema/conanhost/internal/boundaries/out"
)

// RateLimit rejects requests over the global or per client limit with 429.
// A nil limiter disables the middleware.
func RateLimit(globalLimiter, ipLimiter out.RateLimiter, trustedNets []*net.IPNet, onReject func(echo.Context)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if globalLimiter == nil || ipLimiter == nil {
			return next
		}
		return func(c echo.Context) error {
			r := c.Request()
			ctx := r.Context()

			ip := ClientIP(r, trustedNets)
			if globalLimiter.Allow(ctx, "global") && ipLimiter.Allow(ctx, "ip:"+ip) {
				return next(c)
			}

			if onReject != nil {
				onReject(c)
			}
			log := zerowrap.FromCtx(ctx)
			log.Warn().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str(zerowrap.FieldPath, r.URL.Path).
				Str(zerowrap.FieldClientIP, ip).
				Msg("rate limit exceeded")

			c.Response().Header().Set("Retry-After", "1")
			return c.String(http.StatusTooManyRequests, "rate limit exceeded")
		}
	}
}
