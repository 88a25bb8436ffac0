package in

import (
	"context"

	"github.com/bnema/conanhost/internal/domain"
)

// AuthService defines the contract for repository authentication operations.
type AuthService interface {
	// IsEnabled returns whether authentication is enabled.
	IsEnabled() bool

	// AllowsAnonymousRead returns whether read routes skip authentication.
	AllowsAnonymousRead() bool

	// ValidatePassword checks if the username and password are valid.
	ValidatePassword(ctx context.Context, username, password string) bool

	// GenerateToken creates a signed bearer token for the given subject.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates a bearer token and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error)
}
