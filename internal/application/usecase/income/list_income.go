package income

import (
	"context"
	"fmt"
	"time"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/application/usecase/finance"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// ListIncomeInput represents the input for listing income records. When
// StartDate is set it overrides the period rule.
type ListIncomeInput struct {
	Period    string
	StartDate *time.Time
	Search    string
	Status    string
}

// ListIncomeUseCase handles listing income records for a period.
type ListIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	now        func() time.Time
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(incomeRepo adapter.IncomeRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{
		incomeRepo: incomeRepo,
		now:        time.Now,
	}
}

// Execute returns the matching income records ordered by date descending.
func (uc *ListIncomeUseCase) Execute(
	ctx context.Context,
	input ListIncomeInput,
) ([]*entity.Income, error) {
	start := finance.PeriodStart(uc.now(), entity.Period(input.Period))
	if input.StartDate != nil {
		start = *input.StartDate
	}

	records, err := uc.incomeRepo.FindFromDate(ctx, start)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeDataUnavailable,
			"failed to fetch income records",
			fmt.Errorf("%w: %w", domainerror.ErrDataUnavailable, err),
		)
	}

	filter := finance.Filter{Search: input.Search, Status: input.Status}
	matching := make([]*entity.Income, 0, len(records))
	for _, record := range records {
		if filter.MatchesIncome(record) {
			matching = append(matching, record)
		}
	}

	return matching, nil
}
