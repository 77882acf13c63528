// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// All lookups and mutations are scoped by userID so one user's rows never
// leak into another's requests.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category by its ID scoped to a user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByUserAndType retrieves a user's categories filtered by type.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error)

	// CountByUser returns the number of live categories a user has.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ExistsByNameAndUser checks if a category with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category scoped by (id, userID) and reports the
	// number of rows affected. Zero means nothing matched.
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
}
