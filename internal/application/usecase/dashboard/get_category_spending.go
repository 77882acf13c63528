// Package dashboard contains the aggregation and reporting use cases.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// GetCategorySpendingInput represents the input for the per-category
// breakdown. Both date bounds are inclusive.
type GetCategorySpendingInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CategorySpendingItem is one category's accumulated total for the period.
type CategorySpendingItem struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryColor string
	TotalCents    int64
	Type          entity.TransactionType
}

// GetCategorySpendingOutput represents the output of the breakdown.
// Items appear in first-seen order of the underlying transactions; callers
// sort or filter as they need (top expenses, pie charts).
type GetCategorySpendingOutput struct {
	Categories []*CategorySpendingItem
}

// GetCategorySpendingUseCase groups a period's transactions by category.
type GetCategorySpendingUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetCategorySpendingUseCase creates a new GetCategorySpendingUseCase instance.
func NewGetCategorySpendingUseCase(dashboardRepo DashboardRepository) *GetCategorySpendingUseCase {
	return &GetCategorySpendingUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute accumulates per-category totals over the range's transactions.
// The grouping key is the category ID alone; a category carries exactly one
// type, so a group never mixes income and expense. Transactions whose
// category was deleted keep their dangling reference and resolve to the
// Unknown name and color. A store failure degrades to an empty breakdown.
func (uc *GetCategorySpendingUseCase) Execute(ctx context.Context, input GetCategorySpendingInput) (*GetCategorySpendingOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	rows, err := uc.dashboardRepo.ListTransactionsInRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		slog.Warn("Category spending degraded to empty result", "userID", input.UserID, "error", err)
		return &GetCategorySpendingOutput{Categories: []*CategorySpendingItem{}}, nil
	}

	byCategory := make(map[uuid.UUID]*CategorySpendingItem, len(rows))
	ordered := make([]*CategorySpendingItem, 0, len(rows))

	for _, row := range rows {
		item, ok := byCategory[row.CategoryID]
		if !ok {
			item = &CategorySpendingItem{
				CategoryID:    row.CategoryID,
				CategoryName:  entity.UnknownCategoryName,
				CategoryColor: entity.UnknownCategoryColor,
				Type:          row.Type,
			}
			if row.CategoryName != nil {
				item.CategoryName = *row.CategoryName
			}
			if row.CategoryColor != nil {
				item.CategoryColor = *row.CategoryColor
			}
			byCategory[row.CategoryID] = item
			ordered = append(ordered, item)
		}
		item.TotalCents += row.AmountCents
	}

	return &GetCategorySpendingOutput{
		Categories: ordered,
	}, nil
}
