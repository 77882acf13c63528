// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// monthKeyRegex matches the YYYY-MM calendar-month key.
var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	AmountCents int64
	Month       string // YYYY-MM
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation. At most one budget may exist per
// (user, category, month).
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateBudgetAmount(input.AmountCents); err != nil {
		return nil, err
	}
	if err := validateMonthKey(input.Month); err != nil {
		return nil, err
	}

	// The category must exist and belong to the user.
	if _, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryMissing,
				"category not found",
				domainerror.ErrCategoryNotFoundForBudget,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	exists, err := uc.budgetRepo.ExistsByCategoryAndMonth(ctx, input.UserID, input.CategoryID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetExists,
			"a budget already exists for this category and month",
			domainerror.ErrBudgetExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.AmountCents, input.Month)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// validateBudgetAmount checks that the ceiling is a positive magnitude in cents.
func validateBudgetAmount(amountCents int64) error {
	if amountCents <= 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be a positive number of cents",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	return nil
}

// validateMonthKey checks the YYYY-MM month key format.
func validateMonthKey(month string) error {
	if !monthKeyRegex.MatchString(month) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthFormat,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonthFormat,
		)
	}
	return nil
}
