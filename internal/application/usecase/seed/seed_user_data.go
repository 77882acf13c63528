// Package seed populates starter data for brand-new users.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// SeedUserDataInput represents the input for seeding a user's starter data.
type SeedUserDataInput struct {
	UserID uuid.UUID
}

// SeedUserDataOutput reports what the seeding run did.
type SeedUserDataOutput struct {
	Seeded            bool
	Message           string
	CategoriesCount   int
	TransactionsCount int
	BudgetsCount      int
}

// SeedUserDataUseCase populates the fixed starter catalog for a user with
// no categories yet. Idempotent by emptiness: a user with any category at
// all is left untouched.
type SeedUserDataUseCase struct {
	categoryRepo adapter.CategoryRepository
	seedRepo     adapter.SeedRepository
	now          func() time.Time
}

// NewSeedUserDataUseCase creates a new SeedUserDataUseCase instance.
func NewSeedUserDataUseCase(
	categoryRepo adapter.CategoryRepository,
	seedRepo adapter.SeedRepository,
) *SeedUserDataUseCase {
	return &SeedUserDataUseCase{
		categoryRepo: categoryRepo,
		seedRepo:     seedRepo,
		now:          time.Now,
	}
}

// WithClock overrides the seed-time clock. Sample transactions are anchored
// "N days ago" relative to it.
func (uc *SeedUserDataUseCase) WithClock(now func() time.Time) *SeedUserDataUseCase {
	uc.now = now
	return uc
}

// Execute seeds categories, sample transactions and current-month budgets
// in one all-or-nothing store transaction. Category IDs are generated
// in-process, so no insert-then-requery round trip (and no race window)
// exists between the category and transaction inserts.
func (uc *SeedUserDataUseCase) Execute(ctx context.Context, input SeedUserDataInput) (*SeedUserDataOutput, error) {
	count, err := uc.categoryRepo.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return &SeedUserDataOutput{
			Seeded:  false,
			Message: "User already has categories",
		}, nil
	}

	now := uc.now().UTC()

	categories := make([]*entity.Category, 0, len(defaultCategories))
	categoryIDByName := make(map[string]uuid.UUID, len(defaultCategories))
	for _, c := range defaultCategories {
		cat := entity.NewCategory(input.UserID, c.Name, c.Type, c.Color, c.Icon)
		categories = append(categories, cat)
		categoryIDByName[c.Name] = cat.ID
	}

	transactions := make([]*entity.Transaction, 0, len(sampleTransactions))
	for _, t := range sampleTransactions {
		categoryID, ok := categoryIDByName[t.CategoryName]
		if !ok {
			continue
		}
		transactions = append(transactions, entity.NewTransaction(
			input.UserID,
			categoryID,
			t.AmountCents,
			t.Description,
			t.Type,
			now.AddDate(0, 0, -t.DaysAgo),
		))
	}

	currentMonth := now.Format(entity.MonthKeyLayout)
	budgets := make([]*entity.Budget, 0, len(sampleBudgets))
	for _, b := range sampleBudgets {
		categoryID, ok := categoryIDByName[b.CategoryName]
		if !ok {
			continue
		}
		budgets = append(budgets, entity.NewBudget(input.UserID, categoryID, b.AmountCents, currentMonth))
	}

	if err := uc.seedRepo.CreateAll(ctx, categories, transactions, budgets); err != nil {
		return nil, fmt.Errorf("failed to seed user data: %w", err)
	}

	return &SeedUserDataOutput{
		Seeded:            true,
		Message:           "Sample data created successfully",
		CategoriesCount:   len(categories),
		TransactionsCount: len(transactions),
		BudgetsCount:      len(budgets),
	}, nil
}
