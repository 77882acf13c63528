// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  string // Optional YYYY-MM filter; empty means all months
}

// BudgetWithProgress is a budget enriched with its category and the
// progress of its month.
type BudgetWithProgress struct {
	Budget        *entity.Budget
	CategoryName  string
	CategoryColor string
	Progress      Progress
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetWithProgress
}

// ListBudgetsUseCase handles listing budgets together with their progress.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists a user's budgets with spent/remaining/percentage derived
// from the month's expense transactions. Read failures degrade to empty or
// zeroed results rather than errors.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Month != "" {
		if err := validateMonthKey(input.Month); err != nil {
			return nil, err
		}
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID, input.Month)
	if err != nil {
		slog.Warn("Budget listing degraded to empty result", "userID", input.UserID, "error", err)
		return &ListBudgetsOutput{Budgets: []*BudgetWithProgress{}}, nil
	}

	categoriesByID := uc.loadCategories(ctx, input.UserID)

	// One expense aggregation per distinct month among the listed budgets.
	spentByMonth := make(map[string]map[uuid.UUID]int64)

	output := &ListBudgetsOutput{
		Budgets: make([]*BudgetWithProgress, 0, len(budgets)),
	}

	for _, b := range budgets {
		spent, ok := spentByMonth[b.Month]
		if !ok {
			spent = uc.loadMonthExpenses(ctx, input.UserID, b)
			spentByMonth[b.Month] = spent
		}

		item := &BudgetWithProgress{
			Budget:        b,
			CategoryName:  entity.UnknownCategoryName,
			CategoryColor: entity.UnknownCategoryColor,
			Progress:      ComputeProgress(b.AmountCents, spent[b.CategoryID]),
		}
		if cat, ok := categoriesByID[b.CategoryID]; ok {
			item.CategoryName = cat.Name
			item.CategoryColor = cat.Color
		}

		output.Budgets = append(output.Budgets, item)
	}

	return output, nil
}

// loadCategories indexes the user's live categories by ID. Deleted
// categories are absent and fall back to the Unknown presentation.
func (uc *ListBudgetsUseCase) loadCategories(ctx context.Context, userID uuid.UUID) map[uuid.UUID]*entity.Category {
	categories, err := uc.categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		slog.Warn("Budget category lookup degraded to Unknown fallback", "userID", userID, "error", err)
		return map[uuid.UUID]*entity.Category{}
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}
	return byID
}

// loadMonthExpenses sums the month's expense cents per category, degrading
// to zero spend when the store is unavailable or the month key is broken.
func (uc *ListBudgetsUseCase) loadMonthExpenses(ctx context.Context, userID uuid.UUID, b *entity.Budget) map[uuid.UUID]int64 {
	start, end, err := b.MonthRange()
	if err != nil {
		slog.Warn("Budget month key unparsable, reporting zero spend", "budgetID", b.ID, "month", b.Month, "error", err)
		return map[uuid.UUID]int64{}
	}

	spent, err := uc.transactionRepo.SumExpensesByCategoryInRange(ctx, userID, start, end)
	if err != nil {
		slog.Warn("Budget progress degraded to zero spend", "userID", userID, "month", b.Month, "error", err)
		return map[uuid.UUID]int64{}
	}
	return spent
}
