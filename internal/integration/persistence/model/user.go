// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OpenID       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name         string    `gorm:"type:text"`
	Email        string    `gorm:"type:varchar(320)"`
	LoginMethod  string    `gorm:"type:varchar(64)"`
	Role         string    `gorm:"type:varchar(10);not null;default:'user'"`
	LastSignedIn time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		OpenID:       m.OpenID,
		Name:         m.Name,
		Email:        m.Email,
		LoginMethod:  m.LoginMethod,
		Role:         entity.UserRole(m.Role),
		LastSignedIn: m.LastSignedIn,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		OpenID:       user.OpenID,
		Name:         user.Name,
		Email:        user.Email,
		LoginMethod:  user.LoginMethod,
		Role:         string(user.Role),
		LastSignedIn: user.LastSignedIn,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
