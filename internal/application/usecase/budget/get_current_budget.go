package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// GetCurrentBudgetOutput represents the budget for the current month with
// its category allocations.
type GetCurrentBudgetOutput struct {
	Budget     *entity.MonthlyBudget
	Categories []*entity.BudgetCategory
}

// GetCurrentBudgetUseCase handles fetching the budget for the current month.
type GetCurrentBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	now        func() time.Time
}

// NewGetCurrentBudgetUseCase creates a new GetCurrentBudgetUseCase instance.
func NewGetCurrentBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetCurrentBudgetUseCase {
	return &GetCurrentBudgetUseCase{
		budgetRepo: budgetRepo,
		now:        time.Now,
	}
}

// Execute returns the authoritative budget for the current (month, year).
// Returns the domain not-found error when none exists.
func (uc *GetCurrentBudgetUseCase) Execute(ctx context.Context) (*GetCurrentBudgetOutput, error) {
	now := uc.now()

	monthlyBudget, err := uc.budgetRepo.FindByMonthYear(ctx, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}

	categories, err := uc.budgetRepo.FindCategories(ctx, monthlyBudget.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget categories: %w", err)
	}

	return &GetCurrentBudgetOutput{Budget: monthlyBudget, Categories: categories}, nil
}
