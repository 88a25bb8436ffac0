package domain

import "time"

// TokenClaims represents the claims carried by a bearer token.
type TokenClaims struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Issuer    string
}

// IsExpired checks if the token has expired at the given time.
func (c *TokenClaims) IsExpired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
