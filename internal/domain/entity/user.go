// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User represents an account in the Pennywise system. Identity comes from
// the external OAuth layer; OpenID is the provider-side identifier.
type User struct {
	ID           uuid.UUID
	OpenID       string
	Name         string
	Email        string
	LoginMethod  string
	Role         UserRole
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity.
func NewUser(openID, name, email, loginMethod string, role UserRole) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		OpenID:       openID,
		Name:         name,
		Email:        email,
		LoginMethod:  loginMethod,
		Role:         role,
		LastSignedIn: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
