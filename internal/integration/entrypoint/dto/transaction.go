package dto

import (
	"time"

	"github.com/pennywise/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	CategoryID  string    `json:"categoryId" binding:"required,uuid"`
	AmountCents int64     `json:"amountCents" binding:"required,gt=0"`
	Description string    `json:"description,omitempty" binding:"omitempty,max=255"`
	Type        string    `json:"type" binding:"required,oneof=expense income"`
	Date        time.Time `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	CategoryID  *string    `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	AmountCents *int64     `json:"amountCents,omitempty" binding:"omitempty,gt=0"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        *time.Time `json:"date,omitempty"`
}

// ListTransactionsQuery represents query parameters for listing transactions.
type ListTransactionsQuery struct {
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
	CategoryID *string    `form:"categoryId" binding:"omitempty,uuid"`
	Type       *string    `form:"type" binding:"omitempty,oneof=expense income"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	AmountCents int64     `json:"amountCents"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		CategoryID:  t.CategoryID.String(),
		AmountCents: t.AmountCents,
		Description: t.Description,
		Type:        string(t.Type),
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionListResponse converts domain transactions to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: out,
	}
}
