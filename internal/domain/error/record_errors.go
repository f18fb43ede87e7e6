// Package error defines domain-specific errors for the back-office API.
package error

import "errors"

// Financial record (expense/income) domain errors.
var (
	// ErrRecordNotFound is returned when an expense or income record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrEmptyDescription is returned when a record is created without a description.
	ErrEmptyDescription = errors.New("description is required")

	// ErrInvalidAmount is returned when a record amount is negative or not a number.
	ErrInvalidAmount = errors.New("amount must be zero or greater")

	// ErrMissingDate is returned when a record has no date.
	ErrMissingDate = errors.New("date is required")

	// ErrInvalidStatus is returned when a record status is not cleared, pending or flagged.
	ErrInvalidStatus = errors.New("invalid record status")

	// ErrEmptyBatch is returned when a batch insert carries no rows.
	ErrEmptyBatch = errors.New("at least one record is required")

	// ErrDataUnavailable is returned when the store cannot be read. Callers
	// must never treat this as an empty record set.
	ErrDataUnavailable = errors.New("financial data unavailable")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyDescription RecordErrorCode = "REC-010001"
	ErrCodeInvalidAmount    RecordErrorCode = "REC-010002"
	ErrCodeMissingDate      RecordErrorCode = "REC-010003"
	ErrCodeInvalidStatus    RecordErrorCode = "REC-010004"
	ErrCodeEmptyBatch       RecordErrorCode = "REC-010005"

	// Lookup errors (02XXXX)
	ErrCodeRecordNotFound RecordErrorCode = "REC-020001"

	// Store errors (03XXXX)
	ErrCodeDataUnavailable RecordErrorCode = "REC-030001"
)

// RecordError represents a financial record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
