package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

func TestGetCategorySpendingUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	groceriesID := uuid.New()
	salaryID := uuid.New()
	deletedID := uuid.New()

	t.Run("groups by category in first-seen order", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			rows: []TransactionRow{
				{CategoryID: groceriesID, CategoryName: strPtr("Groceries"), CategoryColor: strPtr("#ef4444"), AmountCents: 4500, Type: entity.TransactionTypeExpense, Date: start},
				{CategoryID: salaryID, CategoryName: strPtr("Salary"), CategoryColor: strPtr("#10b981"), AmountCents: 500000, Type: entity.TransactionTypeIncome, Date: start.AddDate(0, 0, 1)},
				{CategoryID: groceriesID, CategoryName: strPtr("Groceries"), CategoryColor: strPtr("#ef4444"), AmountCents: 8000, Type: entity.TransactionTypeExpense, Date: start.AddDate(0, 0, 5)},
			},
		}
		uc := NewGetCategorySpendingUseCase(repo)

		output, err := uc.Execute(context.Background(), GetCategorySpendingInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(output.Categories))
		}

		first := output.Categories[0]
		if first.CategoryID != groceriesID {
			t.Errorf("expected Groceries first, got %s", first.CategoryName)
		}
		if first.TotalCents != 12500 {
			t.Errorf("expected Groceries total 12500, got %d", first.TotalCents)
		}
		if first.Type != entity.TransactionTypeExpense {
			t.Errorf("expected expense type, got %s", first.Type)
		}

		second := output.Categories[1]
		if second.CategoryID != salaryID {
			t.Errorf("expected Salary second, got %s", second.CategoryName)
		}
		if second.TotalCents != 500000 {
			t.Errorf("expected Salary total 500000, got %d", second.TotalCents)
		}
	})

	t.Run("deleted category falls back to Unknown", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			rows: []TransactionRow{
				{CategoryID: deletedID, AmountCents: 3000, Type: entity.TransactionTypeExpense, Date: start},
			},
		}
		uc := NewGetCategorySpendingUseCase(repo)

		output, err := uc.Execute(context.Background(), GetCategorySpendingInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != 1 {
			t.Fatalf("expected 1 group, got %d", len(output.Categories))
		}
		item := output.Categories[0]
		if item.CategoryName != entity.UnknownCategoryName {
			t.Errorf("expected name %q, got %q", entity.UnknownCategoryName, item.CategoryName)
		}
		if item.CategoryColor != entity.UnknownCategoryColor {
			t.Errorf("expected color %q, got %q", entity.UnknownCategoryColor, item.CategoryColor)
		}
	})

	t.Run("grouped totals preserve the sum of the period", func(t *testing.T) {
		rows := []TransactionRow{
			{CategoryID: groceriesID, CategoryName: strPtr("Groceries"), CategoryColor: strPtr("#ef4444"), AmountCents: 4500, Type: entity.TransactionTypeExpense, Date: start},
			{CategoryID: deletedID, AmountCents: 3000, Type: entity.TransactionTypeExpense, Date: start},
			{CategoryID: groceriesID, CategoryName: strPtr("Groceries"), CategoryColor: strPtr("#ef4444"), AmountCents: 500, Type: entity.TransactionTypeExpense, Date: end},
		}
		uc := NewGetCategorySpendingUseCase(&fakeDashboardRepository{rows: rows})

		output, err := uc.Execute(context.Background(), GetCategorySpendingInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var want, got int64
		for _, row := range rows {
			want += row.AmountCents
		}
		for _, item := range output.Categories {
			got += item.TotalCents
		}
		if got != want {
			t.Errorf("expected grouped sum %d, got %d", want, got)
		}
	})

	t.Run("store failure degrades to empty breakdown", func(t *testing.T) {
		uc := NewGetCategorySpendingUseCase(&fakeDashboardRepository{err: errors.New("timeout")})

		output, err := uc.Execute(context.Background(), GetCategorySpendingInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("expected degraded result, got error: %v", err)
		}
		if len(output.Categories) != 0 {
			t.Errorf("expected empty breakdown, got %d items", len(output.Categories))
		}
	})
}
