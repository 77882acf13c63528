package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

// seedRepository implements the adapter.SeedRepository interface.
type seedRepository struct {
	db *gorm.DB
}

// NewSeedRepository creates a new seed repository instance.
func NewSeedRepository(db *gorm.DB) adapter.SeedRepository {
	return &seedRepository{
		db: db,
	}
}

// CreateAll inserts the seed dataset inside a single transaction so a
// failure leaves the user's data untouched.
func (r *seedRepository) CreateAll(
	ctx context.Context,
	categories []*entity.Category,
	transactions []*entity.Transaction,
	budgets []*entity.Budget,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryModels := make([]*model.CategoryModel, len(categories))
		for i, c := range categories {
			categoryModels[i] = model.CategoryFromEntity(c)
		}
		if len(categoryModels) > 0 {
			if err := tx.Create(categoryModels).Error; err != nil {
				return fmt.Errorf("failed to create seed categories: %w", err)
			}
		}

		transactionModels := make([]*model.TransactionModel, len(transactions))
		for i, t := range transactions {
			transactionModels[i] = model.TransactionFromEntity(t)
		}
		if len(transactionModels) > 0 {
			if err := tx.Create(transactionModels).Error; err != nil {
				return fmt.Errorf("failed to create seed transactions: %w", err)
			}
		}

		budgetModels := make([]*model.BudgetModel, len(budgets))
		for i, b := range budgets {
			budgetModels[i] = model.BudgetFromEntity(b)
		}
		if len(budgetModels) > 0 {
			if err := tx.Create(budgetModels).Error; err != nil {
				return fmt.Errorf("failed to create seed budgets: %w", err)
			}
		}

		return nil
	})
}
