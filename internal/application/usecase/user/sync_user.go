// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// SyncUserInput carries the identity the external auth layer resolved at
// login. UserID comes from the bearer token; the rest from the OAuth
// profile. Nil pointer fields leave the stored value untouched.
type SyncUserInput struct {
	UserID      uuid.UUID
	OpenID      string
	Name        *string
	Email       *string
	LoginMethod *string
}

// SyncUserOutput represents the output of an identity sync.
type SyncUserOutput struct {
	User *entity.User
}

// SyncUserUseCase upserts the user row after an external login. The OpenID
// named in the server config is promoted to admin.
type SyncUserUseCase struct {
	userRepo    adapter.UserRepository
	ownerOpenID string
}

// NewSyncUserUseCase creates a new SyncUserUseCase instance.
func NewSyncUserUseCase(userRepo adapter.UserRepository, ownerOpenID string) *SyncUserUseCase {
	return &SyncUserUseCase{
		userRepo:    userRepo,
		ownerOpenID: ownerOpenID,
	}
}

// Execute performs the identity upsert and refreshes LastSignedIn.
func (uc *SyncUserUseCase) Execute(ctx context.Context, input SyncUserInput) (*SyncUserOutput, error) {
	if input.OpenID == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingOpenID,
			"openId is required",
			domainerror.ErrMissingOpenID,
		)
	}

	now := time.Now().UTC()

	existing, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var u *entity.User
	if existing != nil {
		u = existing
	} else {
		u = &entity.User{
			ID:        input.UserID,
			Role:      entity.UserRoleUser,
			CreatedAt: now,
		}
	}

	u.OpenID = input.OpenID
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.LoginMethod != nil {
		u.LoginMethod = *input.LoginMethod
	}
	if input.OpenID == uc.ownerOpenID && uc.ownerOpenID != "" {
		u.Role = entity.UserRoleAdmin
	}
	u.LastSignedIn = now
	u.UpdatedAt = now

	if err := uc.userRepo.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &SyncUserOutput{
		User: u,
	}, nil
}
