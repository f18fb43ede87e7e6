package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// UpdateExpenseInput represents a partial edit of an expense record. Nil
// fields are left unchanged.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	StoreName   *string
	Date        *time.Time
	Status      *string
}

// UpdateExpenseUseCase handles editing an expense record.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.SummaryCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.SummaryCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute applies the edit and invalidates cached summaries. Concurrent
// edits are last-write-wins at the store level.
func (uc *UpdateExpenseUseCase) Execute(
	ctx context.Context,
	input UpdateExpenseInput,
) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeEmptyDescription,
				"description is required",
				domainerror.ErrEmptyDescription,
			)
		}
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be zero or greater",
				domainerror.ErrInvalidAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.StoreName != nil {
		expense.StoreName = *input.StoreName
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Status != nil {
		if !entity.IsValidRecordStatus(entity.RecordStatus(*input.Status)) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidStatus,
				"status must be cleared, pending or flagged",
				domainerror.ErrInvalidStatus,
			)
		}
		expense.Status = entity.RecordStatus(*input.Status)
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return expense, nil
}
