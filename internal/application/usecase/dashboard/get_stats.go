// Package dashboard contains the aggregation and reporting use cases.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// GetStatsInput represents the input for computing dashboard statistics.
// Both date bounds are inclusive.
type GetStatsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetStatsOutput holds the summary statistics for the period. Every value
// is re-derived from stored transactions on each call; nothing is cached.
type GetStatsOutput struct {
	TotalIncomeCents   int64
	TotalExpensesCents int64
	BalanceCents       int64
	TransactionCount   int
}

// GetStatsUseCase computes income/expense totals for a date range.
type GetStatsUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(dashboardRepo DashboardRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute partitions the range's transactions by type and sums each side.
// Balance is income minus expenses; the count covers both types. A store
// failure degrades to zeroed stats rather than an error, keeping the
// dashboard available.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	rows, err := uc.dashboardRepo.ListTransactionsInRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		slog.Warn("Dashboard stats degraded to zero values", "userID", input.UserID, "error", err)
		return &GetStatsOutput{}, nil
	}

	output := &GetStatsOutput{
		TransactionCount: len(rows),
	}
	for _, row := range rows {
		switch row.Type {
		case entity.TransactionTypeIncome:
			output.TotalIncomeCents += row.AmountCents
		case entity.TransactionTypeExpense:
			output.TotalExpensesCents += row.AmountCents
		}
	}
	output.BalanceCents = output.TotalIncomeCents - output.TotalExpensesCents

	return output, nil
}

// validateRange checks the presence and ordering of the date bounds.
func validateRange(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"startDate is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if endDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"endDate is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if endDate.Before(startDate) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"endDate must not be before startDate",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
