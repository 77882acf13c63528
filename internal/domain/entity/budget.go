// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MonthKeyLayout is the time layout for the calendar-month key (YYYY-MM).
const MonthKeyLayout = "2006-01"

// Budget represents a monthly spending ceiling for one category.
// At most one budget exists per (user, category, month).
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	AmountCents int64
	Month       string // YYYY-MM calendar-month key
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, amountCents int64, month string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		AmountCents: amountCents,
		Month:       month,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MonthRange returns the inclusive start and exclusive end instants of the
// budget's calendar month in UTC.
func (b *Budget) MonthRange() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(MonthKeyLayout, b.Month, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}
