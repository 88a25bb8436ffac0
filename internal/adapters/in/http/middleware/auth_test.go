package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/conanhost/internal/boundaries/in/mocks"
	"github.com/bnema/conanhost/internal/domain"
)

// serve runs req through mw and a handler that echoes the authenticated subject.
func serve(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		subject, _ := SubjectFromContext(c.Request().Context())
		return c.String(http.StatusOK, subject)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireAuth_Disabled(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(false)

	rec := serve(t, RequireAuth(authSvc, AccessWrite, nil), httptest.NewRequest(http.MethodPut, "/x", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_AnonymousRead(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(true)
	authSvc.EXPECT().AllowsAnonymousRead().Return(true)

	rec := serve(t, RequireAuth(authSvc, AccessRead, nil), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_WriteIgnoresAnonymousRead(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(true)

	failures := 0
	rec := serve(t, RequireAuth(authSvc, AccessWrite, func(echo.Context) { failures++ }), httptest.NewRequest(http.MethodPut, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, failures)
	assert.Equal(t, []string{`Basic realm="conanhost"`, `Bearer realm="conanhost"`}, rec.Header().Values(echo.HeaderWWWAuthenticate))
}

func TestRequireAuth_BasicPassword(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(true)
	authSvc.EXPECT().ValidatePassword(mock.Anything, "admin", "s3cret").Return(true)

	req := httptest.NewRequest(http.MethodPut, "/x", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := serve(t, RequireAuth(authSvc, AccessWrite, nil), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}

func TestRequireAuth_BearerToken(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(true)
	authSvc.EXPECT().AllowsAnonymousRead().Return(false)
	authSvc.EXPECT().ValidateToken(mock.Anything, "tok").Return(&domain.TokenClaims{Subject: "ci"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := serve(t, RequireAuth(authSvc, AccessRead, nil), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ci", rec.Body.String())
}

func TestRequireAuth_InvalidBearerToken(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(true)
	authSvc.EXPECT().ValidateToken(mock.Anything, "bad").Return(nil, domain.ErrInvalidToken)

	req := httptest.NewRequest(http.MethodPut, "/x", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	rec := serve(t, RequireAuth(authSvc, AccessWrite, nil), req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_TokenAsPassword(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(true)
	authSvc.EXPECT().ValidatePassword(mock.Anything, "ci", "tok").Return(false)
	authSvc.EXPECT().ValidateToken(mock.Anything, "tok").Return(&domain.TokenClaims{Subject: "ci"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/x", nil)
	req.SetBasicAuth("ci", "tok")
	rec := serve(t, RequireAuth(authSvc, AccessWrite, nil), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ci", rec.Body.String())
}

func TestRequireAuth_TokenAsPasswordSubjectMismatch(t *testing.T) {
	authSvc := mocks.NewMockAuthService(t)
	authSvc.EXPECT().IsEnabled().Return(true)
	authSvc.EXPECT().ValidatePassword(mock.Anything, "mallory", "tok").Return(false)
	authSvc.EXPECT().ValidateToken(mock.Anything, "tok").Return(&domain.TokenClaims{Subject: "ci"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/x", nil)
	req.SetBasicAuth("mallory", "tok")
	rec := serve(t, RequireAuth(authSvc, AccessWrite, nil), req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubjectFromContext_Empty(t *testing.T) {
	_, ok := SubjectFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())

	assert.False(t, ok)
}
