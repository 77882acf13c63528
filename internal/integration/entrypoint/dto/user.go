package dto

import (
	"time"

	"github.com/pennywise/backend/internal/domain/entity"
)

// SyncUserRequest represents the request body for identity sync after login.
type SyncUserRequest struct {
	OpenID      string  `json:"openId" binding:"required"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	LoginMethod *string `json:"loginMethod,omitempty"`
}

// UserResponse represents a user profile in API responses.
type UserResponse struct {
	ID           string    `json:"id"`
	OpenID       string    `json:"openId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	LoginMethod  string    `json:"loginMethod"`
	Role         string    `json:"role"`
	LastSignedIn time.Time `json:"lastSignedIn"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID.String(),
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         string(u.Role),
		LastSignedIn: u.LastSignedIn,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
