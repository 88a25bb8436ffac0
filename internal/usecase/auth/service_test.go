package auth

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/conanhost/internal/domain"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func newPasswordService(t *testing.T, username, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(Config{
		Enabled:      true,
		Username:     username,
		PasswordHash: string(hash),
		TokenSecret:  testSecret,
		TokenTTL:     time.Hour,
	})
}

func TestService_IsEnabled(t *testing.T) {
	assert.True(t, NewService(Config{Enabled: true}).IsEnabled())
	assert.False(t, NewService(Config{}).IsEnabled())
}

func TestService_AllowsAnonymousRead(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   bool
	}{
		{"auth disabled", Config{}, true},
		{"auth enabled", Config{Enabled: true}, false},
		{"anonymous read", Config{Enabled: true, AnonymousRead: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewService(tt.config).AllowsAnonymousRead())
		})
	}
}

func TestService_ValidatePassword_Success(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")

	assert.True(t, svc.ValidatePassword(testContext(), "admin", "s3cret"))
}

func TestService_ValidatePassword_WrongPassword(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")

	assert.False(t, svc.ValidatePassword(testContext(), "admin", "wrong"))
}

func TestService_ValidatePassword_WrongUsername(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")

	assert.False(t, svc.ValidatePassword(testContext(), "root", "s3cret"))
}

func TestService_ValidatePassword_InvalidHash(t *testing.T) {
	svc := NewService(Config{Enabled: true, Username: "admin", PasswordHash: "not-a-hash"})

	assert.False(t, svc.ValidatePassword(testContext(), "admin", "s3cret"))
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")
	ctx := testContext()

	token, err := svc.GenerateToken(ctx, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt, time.Second)
}

func TestService_GenerateToken_NoExpiry(t *testing.T) {
	svc := NewService(Config{Enabled: true, TokenSecret: testSecret})
	ctx := testContext()

	token, err := svc.GenerateToken(ctx, "ci")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.IsExpired(time.Now().Add(100*365*24*time.Hour)))
}

func TestService_GenerateToken_MissingSecret(t *testing.T) {
	svc := NewService(Config{Enabled: true})

	_, err := svc.GenerateToken(testContext(), "admin")

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")
	ctx := testContext()

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateToken(ctx, "admin")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(ctx, token)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Contains(t, err.Error(), "expired")
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := newPasswordService(t, "admin", "s3cret")
	token, err := issuer.GenerateToken(testContext(), "admin")
	require.NoError(t, err)

	other := NewService(Config{Enabled: true, TokenSecret: []byte("another-secret-another-secret-xx")})
	_, err = other.ValidateToken(testContext(), token)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestService_ValidateToken_WrongIssuer(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"iss": "someone-else",
	}).SignedString(testSecret)
	require.NoError(t, err)

	_, err = svc.ValidateToken(testContext(), token)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestService_ValidateToken_MissingSubject(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": TokenIssuer,
	}).SignedString(testSecret)
	require.NoError(t, err)

	_, err = svc.ValidateToken(testContext(), token)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestService_ValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "admin",
		"iss": TokenIssuer,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(testContext(), token)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestService_ValidateToken_Garbage(t *testing.T) {
	svc := newPasswordService(t, "admin", "s3cret")

	_, err := svc.ValidateToken(testContext(), "not.a.token")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestGeneratePasswordHash(t *testing.T) {
	hash, err := GeneratePasswordHash("s3cret")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}
