package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"

	"github.com/bnema/conanhost/internal/boundaries/in"
)

// Realm is advertised in WWW-Authenticate challenges.
const Realm = "conanhost"

// Access is the kind of access a route needs.
type Access int

const (
	// AccessRead is granted anonymously when the auth service allows it.
	AccessRead Access = iota
	// AccessWrite always needs credentials when auth is enabled.
	AccessWrite
)

type subjectKey struct{}

// WithSubject returns a context carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext returns the authenticated subject, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok && subject != ""
}

// RequireAuth authenticates requests with HTTP Basic credentials or a
// bearer token. Basic passwords may also carry a token for CI clients.
// onFailure, when set, is called for every rejected request.
func RequireAuth(authSvc in.AuthService, access Access, onFailure func(echo.Context)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !authSvc.IsEnabled() {
				return next(c)
			}
			if access == AccessRead && authSvc.AllowsAnonymousRead() {
				return next(c)
			}

			r := c.Request()
			ctx := zerowrap.CtxWithFields(r.Context(), map[string]any{
				zerowrap.FieldLayer:   "adapter",
				zerowrap.FieldAdapter: "http",
				zerowrap.FieldMethod:  r.Method,
				zerowrap.FieldPath:    r.URL.Path,
			})
			log := zerowrap.FromCtx(ctx)

			subject, ok := Authenticate(ctx, r, authSvc, log)
			if !ok {
				if onFailure != nil {
					onFailure(c)
				}
				log.Warn().Str(zerowrap.FieldClientIP, c.RealIP()).Msg("unauthorized access attempt")
				return Unauthorized(c)
			}

			c.SetRequest(r.WithContext(WithSubject(r.Context(), subject)))
			return next(c)
		}
	}
}

// Authenticate checks the request credentials and returns the subject.
func Authenticate(ctx context.Context, r *http.Request, authSvc in.AuthService, log zerowrap.Logger) (string, bool) {
	authHeader := r.Header.Get(echo.HeaderAuthorization)
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		claims, err := authSvc.ValidateToken(ctx, token)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token validation failed")
			return "", false
		}
		return claims.Subject, true
	}

	username, password, ok := r.BasicAuth()
	if !ok {
		log.Debug().Msg("no credentials provided")
		return "", false
	}

	if authSvc.ValidatePassword(ctx, username, password) {
		return username, true
	}

	// Fall back to token-as-password; the username must match the token subject.
	claims, err := authSvc.ValidateToken(ctx, password)
	if err != nil || claims.Subject != username {
		log.Debug().Str("provided_username", username).Msg("basic authentication failed")
		return "", false
	}
	return claims.Subject, true
}

// Unauthorized writes a 401 response with both supported challenges.
func Unauthorized(c echo.Context) error {
	h := c.Response().Header()
	h.Add(echo.HeaderWWWAuthenticate, `Basic realm="`+Realm+`"`)
	h.Add(echo.HeaderWWWAuthenticate, `Bearer realm="`+Realm+`"`)
	return c.String(http.StatusUnauthorized, "Unauthorized")
}
