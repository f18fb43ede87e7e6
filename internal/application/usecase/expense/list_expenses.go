package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/application/usecase/finance"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expense records. When
// StartDate is set it overrides the period rule.
type ListExpensesInput struct {
	Period    string
	StartDate *time.Time
	Search    string
	Status    string
}

// ListExpensesUseCase handles listing expense records for a period.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute returns the matching expense records ordered by date descending.
func (uc *ListExpensesUseCase) Execute(
	ctx context.Context,
	input ListExpensesInput,
) ([]*entity.Expense, error) {
	start := finance.PeriodStart(uc.now(), entity.Period(input.Period))
	if input.StartDate != nil {
		start = *input.StartDate
	}

	expenses, err := uc.expenseRepo.FindFromDate(ctx, start)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeDataUnavailable,
			"failed to fetch expense records",
			fmt.Errorf("%w: %w", domainerror.ErrDataUnavailable, err),
		)
	}

	filter := finance.Filter{Search: input.Search, Status: input.Status}
	matching := make([]*entity.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if filter.MatchesExpense(expense) {
			matching = append(matching, expense)
		}
	}

	return matching, nil
}
