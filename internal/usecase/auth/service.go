// Package auth implements the authentication use case for the Conan repository.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/conanhost/internal/boundaries/in"
	"github.com/bnema/conanhost/internal/domain"
)

const (
	// TokenIssuer is the issuer claim for generated tokens.
	TokenIssuer = "conanhost"
	// DefaultBcryptCost is the default cost for bcrypt hashing.
	DefaultBcryptCost = 12
)

// Config holds the authentication configuration.
type Config struct {
	Enabled       bool
	AnonymousRead bool
	Username      string
	PasswordHash  string        // bcrypt hash for password auth
	TokenSecret   []byte        // signing secret for bearer tokens
	TokenTTL      time.Duration // token lifetime (0 = never expires)
}

// Service implements the AuthService interface.
type Service struct {
	config Config
	now    func() time.Time
}

var _ in.AuthService = (*Service)(nil)

// NewService creates a new auth service.
func NewService(config Config) *Service {
	return &Service{
		config: config,
		now:    time.Now,
	}
}

// IsEnabled returns whether authentication is enabled.
func (s *Service) IsEnabled() bool {
	return s.config.Enabled
}

// AllowsAnonymousRead returns whether read routes skip authentication.
func (s *Service) AllowsAnonymousRead() bool {
	return !s.config.Enabled || s.config.AnonymousRead
}

// ValidatePassword checks if the username and password are valid.
func (s *Service) ValidatePassword(ctx context.Context, username, password string) bool {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ValidatePassword",
		"username":           username,
	})
	log := zerowrap.FromCtx(ctx)

	// Constant-time username comparison
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.Username)) == 1

	// Bcrypt comparison (already constant-time)
	err := bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(password))
	passwordMatch := err == nil

	if !usernameMatch || !passwordMatch {
		log.Debug().Bool("username_match", usernameMatch).Msg("password validation failed")
		return false
	}

	log.Debug().Msg("password validation successful")
	return true
}

// GenerateToken signs a bearer token for subject.
func (s *Service) GenerateToken(ctx context.Context, subject string) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GenerateToken",
		"subject":            subject,
	})
	log := zerowrap.FromCtx(ctx)

	if len(s.config.TokenSecret) == 0 {
		return "", log.WrapErr(domain.ErrInvalidConfig, "token secret is not configured")
	}

	tokenID := uuid.New().String()
	now := s.now().UTC()

	claims := jwt.MapClaims{
		"jti": tokenID,
		"sub": subject,
		"iss": TokenIssuer,
		"iat": now.Unix(),
		"nbf": now.Unix(),
	}

	var expiresAt time.Time
	if s.config.TokenTTL > 0 {
		expiresAt = now.Add(s.config.TokenTTL)
		claims["exp"] = expiresAt.Unix()
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := jwtToken.SignedString(s.config.TokenSecret)
	if err != nil {
		return "", log.WrapErr(err, "failed to sign token")
	}

	log.Info().
		Str("token_id", tokenID).
		Time("expires_at", expiresAt).
		Msg("token generated")

	return tokenString, nil
}

// ValidateToken validates a bearer token and returns its claims.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ValidateToken",
	})
	log := zerowrap.FromCtx(ctx)

	claims, err := s.parseTokenClaims(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("failed to parse token")
		return nil, err
	}

	tokenClaims := buildTokenClaims(claims)
	if tokenClaims.Subject == "" {
		log.Debug().Msg("token has no subject")
		return nil, domain.ErrInvalidToken
	}
	if tokenClaims.IsExpired(s.now()) {
		log.Debug().Time("expires_at", tokenClaims.ExpiresAt).Msg("token expired")
		return nil, fmt.Errorf("%w: expired", domain.ErrInvalidToken)
	}

	log.Debug().Str("subject", tokenClaims.Subject).Msg("token validation successful")
	return tokenClaims, nil
}

func (s *Service) parseTokenClaims(tokenString string) (jwt.MapClaims, error) {
	// Parse token with issuer validation
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.config.TokenSecret, nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", domain.ErrInvalidToken)
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}

func buildTokenClaims(claims jwt.MapClaims) *domain.TokenClaims {
	tc := &domain.TokenClaims{
		ID:      getStringClaim(claims, "jti"),
		Subject: getStringClaim(claims, "sub"),
		Issuer:  getStringClaim(claims, "iss"),
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		tc.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}
	return tc
}

func getStringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// GeneratePasswordHash generates a bcrypt hash for a password.
func GeneratePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultBcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
