// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByOpenID retrieves a user by its OAuth OpenID.
	FindByOpenID(ctx context.Context, openID string) (*entity.User, error)

	// Upsert creates the user if absent or updates the provided profile
	// fields and LastSignedIn when the ID already exists.
	Upsert(ctx context.Context, user *entity.User) error
}
