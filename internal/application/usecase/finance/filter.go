package finance

import (
	"strings"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// recordDateLayout is the date rendering the search predicate matches
// against, mirroring how dates are shown to the admin.
const recordDateLayout = "02/01/2006"

// Filter narrows a fetched record set by free text and by status. The zero
// value matches every record.
type Filter struct {
	Search string
	Status string
}

// MatchesExpense reports whether the expense satisfies both predicates.
func (f Filter) MatchesExpense(expense *entity.Expense) bool {
	return f.matchesStatus(expense.Status) && f.matchesText(
		expense.Description,
		expense.Category,
		expense.StoreName,
		expense.Amount.String(),
		expense.Date.Format(recordDateLayout),
	)
}

// MatchesIncome reports whether the income record satisfies both predicates.
func (f Filter) MatchesIncome(income *entity.Income) bool {
	return f.matchesStatus(income.Status) && f.matchesText(
		income.Description,
		income.Source,
		income.Amount.String(),
		income.Date.Format(recordDateLayout),
	)
}

// matchesStatus checks the status predicate. "all" or empty matches everything.
func (f Filter) matchesStatus(status entity.RecordStatus) bool {
	if f.Status == "" || f.Status == StatusAll {
		return true
	}
	return string(status) == f.Status
}

// matchesText checks the case-insensitive substring predicate against each
// searchable field. An empty search term matches everything.
func (f Filter) matchesText(fields ...string) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
