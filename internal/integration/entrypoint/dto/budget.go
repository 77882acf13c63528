package dto

import (
	"time"

	"github.com/pennywise/backend/internal/application/usecase/budget"
	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
	AmountCents int64  `json:"amountCents" binding:"required,gt=0"`
	Month       string `json:"month" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	AmountCents *int64  `json:"amountCents,omitempty" binding:"omitempty,gt=0"`
	Month       *string `json:"month,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	AmountCents int64     `json:"amountCents"`
	Month       string    `json:"month"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BudgetWithProgressResponse represents a budget with its spending progress.
type BudgetWithProgressResponse struct {
	BudgetResponse
	CategoryName   string  `json:"categoryName"`
	CategoryColor  string  `json:"categoryColor"`
	SpentCents     int64   `json:"spentCents"`
	RemainingCents int64   `json:"remainingCents"`
	Percentage     float64 `json:"percentage"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetWithProgressResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID.String(),
		CategoryID:  b.CategoryID.String(),
		AmountCents: b.AmountCents,
		Month:       b.Month,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets with progress to a BudgetListResponse.
func ToBudgetListResponse(items []*budget.BudgetWithProgress) BudgetListResponse {
	budgets := make([]BudgetWithProgressResponse, len(items))
	for i, item := range items {
		budgets[i] = BudgetWithProgressResponse{
			BudgetResponse: ToBudgetResponse(item.Budget),
			CategoryName:   item.CategoryName,
			CategoryColor:  item.CategoryColor,
			SpentCents:     item.Progress.SpentCents,
			RemainingCents: item.Progress.RemainingCents,
			Percentage:     item.Progress.Percentage,
		}
	}
	return BudgetListResponse{
		Budgets: budgets,
	}
}
