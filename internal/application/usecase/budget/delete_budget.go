package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/application/adapter"
)

// DeleteBudgetUseCase handles deleting a monthly budget and its categories.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute deletes the budget's category rows first and then the budget
// itself, in one transaction. The budget is the parent row.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, budgetID uuid.UUID) error {
	if _, err := uc.budgetRepo.FindByID(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to fetch budget: %w", err)
	}

	if err := uc.budgetRepo.DeleteWithCategories(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return nil
}
