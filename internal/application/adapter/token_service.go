// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a JWT access token minted
// by the external auth layer with the shared secret.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT access-token operations.
// Pennywise only validates tokens; GenerateAccessToken exists so tooling
// and the integration suite can mint tokens the way the auth layer does.
type TokenService interface {
	// GenerateAccessToken generates a signed access token for a user.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string, expiry time.Duration) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
