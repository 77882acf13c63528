// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found for the requesting user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetExists is returned when a budget already exists for the
	// (user, category, month) combination.
	ErrBudgetExists = errors.New("budget already exists for this category and month")

	// ErrInvalidMonthFormat is returned when the month key is not YYYY-MM.
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")

	// ErrInvalidBudgetAmount is returned when the amount is not a positive magnitude.
	ErrInvalidBudgetAmount = errors.New("budget amount must be a positive number of cents")

	// ErrCategoryNotFoundForBudget is returned when the referenced category does not exist.
	ErrCategoryNotFoundForBudget = errors.New("category not found for budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthFormat    BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BGT-010002"
	ErrCodeBudgetCategoryMissing BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetExists          BudgetErrorCode = "BGT-010005"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
