package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func assertBudgetErrorCode(t *testing.T, err error, code domainerror.BudgetErrorCode) {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError, got %v", err)
	}
	if budgetErr.Code != code {
		t.Errorf("expected code %s, got %s", code, budgetErr.Code)
	}
}

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "#ef4444", "🛒")

	t.Run("creates budget for owned category", func(t *testing.T) {
		budgetRepo := &fakeBudgetRepository{}
		categoryRepo := &fakeCategoryRepository{categories: []*entity.Category{groceries}}

		uc := NewCreateBudgetUseCase(budgetRepo, categoryRepo)

		output, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:      userID,
			CategoryID:  groceries.ID,
			AmountCents: 50000,
			Month:       "2024-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.AmountCents != 50000 {
			t.Errorf("expected amount 50000, got %d", output.Budget.AmountCents)
		}
		if output.Budget.Month != "2024-03" {
			t.Errorf("expected month 2024-03, got %s", output.Budget.Month)
		}
		if budgetRepo.created == nil {
			t.Error("expected budget to be persisted")
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(&fakeBudgetRepository{}, &fakeCategoryRepository{})

		for _, cents := range []int64{0, -100} {
			_, err := uc.Execute(context.Background(), CreateBudgetInput{
				UserID:      userID,
				CategoryID:  groceries.ID,
				AmountCents: cents,
				Month:       "2024-03",
			})
			assertBudgetErrorCode(t, err, domainerror.ErrCodeInvalidBudgetAmount)
		}
	})

	t.Run("rejects malformed month key", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(&fakeBudgetRepository{}, &fakeCategoryRepository{})

		for _, month := range []string{"2024-3", "2024-00", "2024-13", "202403", "march-2024", ""} {
			_, err := uc.Execute(context.Background(), CreateBudgetInput{
				UserID:      userID,
				CategoryID:  groceries.ID,
				AmountCents: 50000,
				Month:       month,
			})
			assertBudgetErrorCode(t, err, domainerror.ErrCodeInvalidMonthFormat)
		}
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(&fakeBudgetRepository{}, &fakeCategoryRepository{})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:      userID,
			CategoryID:  uuid.New(),
			AmountCents: 50000,
			Month:       "2024-03",
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetCategoryMissing)
	})

	t.Run("another user's category is rejected", func(t *testing.T) {
		other := entity.NewCategory(uuid.New(), "Groceries", entity.CategoryTypeExpense, "#ef4444", "🛒")
		categoryRepo := &fakeCategoryRepository{categories: []*entity.Category{other}}

		uc := NewCreateBudgetUseCase(&fakeBudgetRepository{}, categoryRepo)

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:      userID,
			CategoryID:  other.ID,
			AmountCents: 50000,
			Month:       "2024-03",
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetCategoryMissing)
	})

	t.Run("duplicate category and month conflicts", func(t *testing.T) {
		budgetRepo := &fakeBudgetRepository{exists: true}
		categoryRepo := &fakeCategoryRepository{categories: []*entity.Category{groceries}}

		uc := NewCreateBudgetUseCase(budgetRepo, categoryRepo)

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:      userID,
			CategoryID:  groceries.ID,
			AmountCents: 50000,
			Month:       "2024-03",
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetExists)
	})
}

func TestUpdateBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	int64Ptr := func(v int64) *int64 { return &v }
	strPtr := func(s string) *string { return &s }

	t.Run("updates amount in place", func(t *testing.T) {
		existing := entity.NewBudget(userID, categoryID, 50000, "2024-03")
		budgetRepo := &fakeBudgetRepository{budgets: []*entity.Budget{existing}}

		uc := NewUpdateBudgetUseCase(budgetRepo)

		output, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:    existing.ID,
			UserID:      userID,
			AmountCents: int64Ptr(75000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.AmountCents != 75000 {
			t.Errorf("expected amount 75000, got %d", output.Budget.AmountCents)
		}
		if output.Budget.Month != "2024-03" {
			t.Errorf("month should be untouched, got %s", output.Budget.Month)
		}
		if budgetRepo.updated == nil {
			t.Error("expected update to be persisted")
		}
	})

	t.Run("moving months checks for collisions", func(t *testing.T) {
		existing := entity.NewBudget(userID, categoryID, 50000, "2024-03")
		budgetRepo := &fakeBudgetRepository{budgets: []*entity.Budget{existing}, exists: true}

		uc := NewUpdateBudgetUseCase(budgetRepo)

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: existing.ID,
			UserID:   userID,
			Month:    strPtr("2024-04"),
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetExists)
	})

	t.Run("same month does not self-conflict", func(t *testing.T) {
		existing := entity.NewBudget(userID, categoryID, 50000, "2024-03")
		// exists=true would trip the collision check if it ran.
		budgetRepo := &fakeBudgetRepository{budgets: []*entity.Budget{existing}, exists: true}

		uc := NewUpdateBudgetUseCase(budgetRepo)

		output, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: existing.ID,
			UserID:   userID,
			Month:    strPtr("2024-03"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.Month != "2024-03" {
			t.Errorf("expected month 2024-03, got %s", output.Budget.Month)
		}
	})

	t.Run("missing budget is not found", func(t *testing.T) {
		uc := NewUpdateBudgetUseCase(&fakeBudgetRepository{})

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:    uuid.New(),
			UserID:      userID,
			AmountCents: int64Ptr(75000),
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		existing := entity.NewBudget(userID, categoryID, 50000, "2024-03")
		uc := NewUpdateBudgetUseCase(&fakeBudgetRepository{budgets: []*entity.Budget{existing}})

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:    existing.ID,
			UserID:      userID,
			AmountCents: int64Ptr(0),
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeInvalidBudgetAmount)
	})
}

func TestDeleteBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes owned budget", func(t *testing.T) {
		uc := NewDeleteBudgetUseCase(&fakeBudgetRepository{deleted: 1})

		output, err := uc.Execute(context.Background(), DeleteBudgetInput{
			BudgetID: uuid.New(),
			UserID:   userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
	})

	t.Run("zero affected rows is not found", func(t *testing.T) {
		uc := NewDeleteBudgetUseCase(&fakeBudgetRepository{deleted: 0})

		_, err := uc.Execute(context.Background(), DeleteBudgetInput{
			BudgetID: uuid.New(),
			UserID:   userID,
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		uc := NewDeleteBudgetUseCase(&fakeBudgetRepository{err: errors.New("connection refused")})

		_, err := uc.Execute(context.Background(), DeleteBudgetInput{
			BudgetID: uuid.New(),
			UserID:   userID,
		})
		if err == nil {
			t.Fatal("expected error")
		}
		var budgetErr *domainerror.BudgetError
		if errors.As(err, &budgetErr) {
			t.Errorf("expected plain wrapped error, got coded %s", budgetErr.Code)
		}
	})
}
