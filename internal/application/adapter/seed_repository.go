// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/pennywise/backend/internal/domain/entity"
)

// SeedRepository persists a complete starter data set for a user in a
// single all-or-nothing store transaction. A failure partway through must
// leave no rows behind.
type SeedRepository interface {
	CreateAll(
		ctx context.Context,
		categories []*entity.Category,
		transactions []*entity.Transaction,
		budgets []*entity.Budget,
	) error
}
