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

// CreateBudgetInput represents the input for creating a monthly budget.
type CreateBudgetInput struct {
	Month        int
	Year         int
	BudgetAmount decimal.Decimal
	Notes        string
	CreatedBy    uuid.UUID
}

// CreateBudgetOutput represents the created budget and its default categories.
type CreateBudgetOutput struct {
	Budget     *entity.MonthlyBudget
	Categories []*entity.BudgetCategory
}

// CreateBudgetUseCase handles creating a monthly budget with its default
// category allocations.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute creates the budget and its five default categories atomically.
// At most one budget exists per (month, year).
func (uc *CreateBudgetUseCase) Execute(
	ctx context.Context,
	input CreateBudgetInput,
) (*CreateBudgetOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	exists, err := uc.budgetRepo.ExistsByMonthYear(ctx, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing budget: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			fmt.Sprintf("a budget already exists for %d/%d", input.Month, input.Year),
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	monthlyBudget := entity.NewMonthlyBudget(
		input.Month,
		input.Year,
		input.BudgetAmount,
		input.Notes,
		input.CreatedBy,
	)
	categories := entity.DefaultBudgetCategories(monthlyBudget)

	if err := uc.budgetRepo.CreateWithCategories(ctx, monthlyBudget, categories); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: monthlyBudget, Categories: categories}, nil
}

func (uc *CreateBudgetUseCase) validateInput(input CreateBudgetInput) error {
	if !input.BudgetAmount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget_amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if input.Month < 1 || input.Month > 12 || input.Year < 2000 || input.Year > 9999 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be 1-12 and year a four-digit year",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}
