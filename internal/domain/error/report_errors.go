// Package error defines domain-specific errors for the back-office API.
package error

import "errors"

// Report domain errors.
var (
	// ErrExportFailed is returned when the document or spreadsheet library
	// fails while rendering a report. It is distinct from store errors.
	ErrExportFailed = errors.New("report export failed")

	// ErrAdvisorUnavailable is returned when the AI advisor is not configured
	// or cannot be reached.
	ErrAdvisorUnavailable = errors.New("financial advisor unavailable")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Export errors (01XXXX)
	ErrCodeExportFailed ReportErrorCode = "RPT-010001"

	// Advisor errors (02XXXX)
	ErrCodeAdvisorUnavailable ReportErrorCode = "RPT-020001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
