// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single dated money movement. AmountCents is
// always a positive magnitude in the smallest currency unit; the sign is
// implied by Type. A transaction's type must agree with its category's type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	AmountCents int64
	Description string
	Type        TransactionType
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID, categoryID uuid.UUID,
	amountCents int64,
	description string,
	transactionType TransactionType,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		AmountCents: amountCents,
		Description: description,
		Type:        transactionType,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
