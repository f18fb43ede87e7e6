// Package error defines domain-specific errors for the back-office API.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget exists for the requested period.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

	// ErrInvalidBudgetPeriod is returned when month or year are out of range.
	ErrInvalidBudgetPeriod = errors.New("invalid budget month or year")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the
	// same month and year. One budget per period is authoritative.
	ErrBudgetAlreadyExists = errors.New("a budget already exists for this month")

	// ErrBudgetSchemaMissing is returned when the budget tables have not been
	// provisioned in the store.
	ErrBudgetSchemaMissing = errors.New("budget tables are not provisioned")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BDG-010002"
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BDG-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"

	// Store errors (03XXXX)
	ErrCodeBudgetSchemaMissing BudgetErrorCode = "BDG-030001"
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
