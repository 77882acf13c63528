package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pennywise/backend/internal/application/usecase/dashboard"
	"github.com/pennywise/backend/internal/domain/entity"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// ListTransactionsInRange returns the user's transactions with dates in
// [start, end] inclusive, joined to their live categories, oldest first.
// Transactions whose category was soft-deleted come back with nil name and color.
func (r *dashboardRepository) ListTransactionsInRange(
	ctx context.Context,
	userID uuid.UUID,
	startDate, endDate time.Time,
) ([]dashboard.TransactionRow, error) {
	var rows []struct {
		CategoryID    uuid.UUID `gorm:"column:category_id"`
		CategoryName  *string   `gorm:"column:category_name"`
		CategoryColor *string   `gorm:"column:category_color"`
		AmountCents   int64     `gorm:"column:amount_cents"`
		Type          string    `gorm:"column:type"`
		Date          time.Time `gorm:"column:date"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select("t.category_id, c.name as category_name, c.color as category_color, t.amount_cents, t.type, t.date").
		Joins("LEFT JOIN categories c ON t.category_id = c.id AND c.deleted_at IS NULL").
		Where("t.user_id = ? AND t.date >= ? AND t.date <= ?", userID, startDate, endDate).
		Order("t.date ASC, t.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in range: %w", err)
	}

	out := make([]dashboard.TransactionRow, len(rows))
	for i, row := range rows {
		out[i] = dashboard.TransactionRow{
			CategoryID:    row.CategoryID,
			CategoryName:  row.CategoryName,
			CategoryColor: row.CategoryColor,
			AmountCents:   row.AmountCents,
			Type:          entity.TransactionType(row.Type),
			Date:          row.Date,
		}
	}
	return out, nil
}
