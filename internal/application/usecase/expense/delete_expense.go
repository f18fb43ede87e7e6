package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/application/adapter"
)

// DeleteExpenseUseCase handles permanent deletion of an expense record.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.SummaryCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.SummaryCache,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute deletes the record permanently. There is no soft delete.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}
