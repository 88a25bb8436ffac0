package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenClaims_IsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"never expires", time.Time{}, false},
		{"expires in future", now.Add(time.Hour), false},
		{"expired", now.Add(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &TokenClaims{Subject: "admin", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, claims.IsExpired(now))
		})
	}
}
