// Package entity defines the core business entities for the domain layer.
package entity

// RecordStatus represents the clearing status of a financial record.
type RecordStatus string

const (
	RecordStatusCleared RecordStatus = "cleared"
	RecordStatusPending RecordStatus = "pending"
	RecordStatusFlagged RecordStatus = "flagged"
)

// IsValidRecordStatus reports whether the given status is one of the known values.
func IsValidRecordStatus(status RecordStatus) bool {
	return status == RecordStatusCleared ||
		status == RecordStatusPending ||
		status == RecordStatusFlagged
}

// Period represents the rolling window used to scope financial reads.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)
