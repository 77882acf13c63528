// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByIDAndUser retrieves a budget by its ID scoped to a user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user, optionally filtered by
	// month key (YYYY-MM); an empty month means no filter.
	FindByUser(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error)

	// ExistsByCategoryAndMonth checks whether a budget already exists for
	// the (user, category, month) combination.
	ExistsByCategoryAndMonth(ctx context.Context, userID, categoryID uuid.UUID, month string) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget scoped by (id, userID) and reports the number
	// of rows affected.
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
}
