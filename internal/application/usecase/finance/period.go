// Package finance contains the financial aggregation use cases.
package finance

import (
	"time"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// PeriodStart returns the lower date bound for a period selector.
// week: the most recent Sunday at or before now, truncated to a date.
// month: the first calendar day of the current month.
// year: January 1 of the current year.
// Any other value falls back to the month rule.
//
// There is no upper bound. Reads use date >= start, so future-dated rows
// are included when present.
func PeriodStart(now time.Time, period entity.Period) time.Time {
	loc := now.Location()

	switch period {
	case entity.PeriodWeek:
		return time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, loc)
	case entity.PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}
}

// MonthBounds returns the half-open range [first of the current month,
// first of the next month). AddDate normalizes December into January of
// the following year.
func MonthBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}
