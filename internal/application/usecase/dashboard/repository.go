// Package dashboard contains the aggregation and reporting use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// ListTransactionsInRange returns a user's transactions with date in
	// [start, end] inclusive, left-joined to their live categories, ordered
	// by date then creation time. A deleted category yields nil name/color.
	ListTransactionsInRange(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate time.Time,
	) ([]TransactionRow, error)
}

// TransactionRow is a raw joined transaction row used by the aggregations.
type TransactionRow struct {
	CategoryID    uuid.UUID
	CategoryName  *string
	CategoryColor *string
	AmountCents   int64
	Type          entity.TransactionType
	Date          time.Time
}
