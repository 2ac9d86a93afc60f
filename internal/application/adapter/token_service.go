// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations. Tokens are
// opaque, time-bounded, and carry the user's email as the principal used to
// re-resolve identity on each request.
type TokenService interface {
	// Issue produces a new access token for the user.
	Issue(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Verify validates an access token and returns its claims.
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}
