// Package error defines domain-specific errors for the back-office API.
package error

import "errors"

// Contact message domain errors.
var (
	// ErrMissingContactFields is returned when a contact submission lacks a
	// name, email or message body.
	ErrMissingContactFields = errors.New("name, email and message are required")

	// ErrInvalidContactEmail is returned when the sender email is malformed.
	ErrInvalidContactEmail = errors.New("invalid email address")
)

// ContactErrorCode defines error codes for contact message errors.
// Format: MSG-XXYYYY where XX is category and YYYY is specific error.
type ContactErrorCode string

const (
	ErrCodeMissingContactFields ContactErrorCode = "MSG-010001"
	ErrCodeInvalidContactEmail  ContactErrorCode = "MSG-010002"
)

// ContactError represents a contact message error with code and message.
type ContactError struct {
	Code    ContactErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ContactError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ContactError) Unwrap() error {
	return e.Err
}

// NewContactError creates a new ContactError with the given code and message.
func NewContactError(code ContactErrorCode, message string, err error) *ContactError {
	return &ContactError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
