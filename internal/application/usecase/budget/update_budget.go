package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for editing a monthly budget.
type UpdateBudgetInput struct {
	BudgetID     uuid.UUID
	BudgetAmount decimal.Decimal
	Notes        *string
}

// UpdateBudgetUseCase handles editing a monthly budget in place.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute re-derives the expense limit and income target from the new
// amount. Existing category allocations are left untouched.
func (uc *UpdateBudgetUseCase) Execute(
	ctx context.Context,
	input UpdateBudgetInput,
) (*entity.MonthlyBudget, error) {
	if !input.BudgetAmount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget_amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	monthlyBudget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}

	monthlyBudget.ApplyAmount(input.BudgetAmount)
	if input.Notes != nil {
		monthlyBudget.Notes = *input.Notes
	}

	if err := uc.budgetRepo.Update(ctx, monthlyBudget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return monthlyBudget, nil
}
