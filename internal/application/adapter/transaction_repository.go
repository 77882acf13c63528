// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// TransactionFilter represents filter criteria for listing transactions.
// Nil fields mean "no constraint". Date bounds are inclusive.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction by its ID scoped to a user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves a user's transactions matching the filter,
	// ordered by date ascending then creation time.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// SumExpensesByCategoryInRange sums expense amounts per category for a
	// user's transactions with date in [start, end). Used for budget progress.
	SumExpensesByCategoryInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[uuid.UUID]int64, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction scoped by (id, userID) and reports the
	// number of rows affected.
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
}
