package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// fakeDashboardRepository returns canned rows or a canned error.
type fakeDashboardRepository struct {
	rows []TransactionRow
	err  error
}

func (f *fakeDashboardRepository) ListTransactionsInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]TransactionRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func strPtr(s string) *string {
	return &s
}

func TestGetStatsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("partitions totals by type and derives balance", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			rows: []TransactionRow{
				{CategoryID: uuid.New(), AmountCents: 500000, Type: entity.TransactionTypeIncome, Date: start},
				{CategoryID: uuid.New(), AmountCents: 12500, Type: entity.TransactionTypeExpense, Date: start.AddDate(0, 0, 1)},
				{CategoryID: uuid.New(), AmountCents: 8700, Type: entity.TransactionTypeExpense, Date: start.AddDate(0, 0, 2)},
			},
		}
		uc := NewGetStatsUseCase(repo)

		output, err := uc.Execute(context.Background(), GetStatsInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.TotalIncomeCents != 500000 {
			t.Errorf("expected income 500000, got %d", output.TotalIncomeCents)
		}
		if output.TotalExpensesCents != 21200 {
			t.Errorf("expected expenses 21200, got %d", output.TotalExpensesCents)
		}
		if output.BalanceCents != 478800 {
			t.Errorf("expected balance 478800, got %d", output.BalanceCents)
		}
		if output.TransactionCount != 3 {
			t.Errorf("expected count 3, got %d", output.TransactionCount)
		}
	})

	t.Run("empty range yields zeroed stats", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeDashboardRepository{})

		output, err := uc.Execute(context.Background(), GetStatsInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.TotalIncomeCents != 0 || output.TotalExpensesCents != 0 || output.BalanceCents != 0 || output.TransactionCount != 0 {
			t.Errorf("expected zeroed output, got %+v", output)
		}
	})

	t.Run("store failure degrades to zeroed stats", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeDashboardRepository{err: errors.New("connection reset")})

		output, err := uc.Execute(context.Background(), GetStatsInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("expected degraded result, got error: %v", err)
		}
		if output.TransactionCount != 0 || output.BalanceCents != 0 {
			t.Errorf("expected zeroed output, got %+v", output)
		}
	})

	t.Run("missing start date is rejected", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeDashboardRepository{})

		_, err := uc.Execute(context.Background(), GetStatsInput{
			UserID:  userID,
			EndDate: end,
		})

		var dashErr *domainerror.DashboardError
		if !errors.As(err, &dashErr) {
			t.Fatalf("expected DashboardError, got %v", err)
		}
		if dashErr.Code != domainerror.ErrCodeMissingStartDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingStartDate, dashErr.Code)
		}
	})

	t.Run("missing end date is rejected", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeDashboardRepository{})

		_, err := uc.Execute(context.Background(), GetStatsInput{
			UserID:    userID,
			StartDate: start,
		})

		var dashErr *domainerror.DashboardError
		if !errors.As(err, &dashErr) {
			t.Fatalf("expected DashboardError, got %v", err)
		}
		if dashErr.Code != domainerror.ErrCodeMissingEndDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingEndDate, dashErr.Code)
		}
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeDashboardRepository{})

		_, err := uc.Execute(context.Background(), GetStatsInput{
			UserID:    userID,
			StartDate: end,
			EndDate:   start,
		})

		var dashErr *domainerror.DashboardError
		if !errors.As(err, &dashErr) {
			t.Fatalf("expected DashboardError, got %v", err)
		}
		if dashErr.Code != domainerror.ErrCodeInvalidDateRange {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDateRange, dashErr.Code)
		}
	})

	t.Run("single day range is valid", func(t *testing.T) {
		uc := NewGetStatsUseCase(&fakeDashboardRepository{
			rows: []TransactionRow{
				{CategoryID: uuid.New(), AmountCents: 100, Type: entity.TransactionTypeExpense, Date: start},
			},
		})

		output, err := uc.Execute(context.Background(), GetStatsInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   start,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TransactionCount != 1 {
			t.Errorf("expected count 1, got %d", output.TransactionCount)
		}
	})
}
