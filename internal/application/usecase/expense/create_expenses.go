// Package expense contains the expense record use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// ExpenseRow represents one expense in a batch submission.
type ExpenseRow struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	StoreName   string
	Date        time.Time
	Status      string
}

// CreateExpensesInput represents the input for creating expense records.
// The admin form submits one or many rows at once.
type CreateExpensesInput struct {
	Rows []ExpenseRow
}

// CreateExpensesUseCase handles batch creation of expense records.
type CreateExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.SummaryCache
}

// NewCreateExpensesUseCase creates a new CreateExpensesUseCase instance.
func NewCreateExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.SummaryCache,
) *CreateExpensesUseCase {
	return &CreateExpensesUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute validates every row, inserts the batch, and invalidates cached
// summaries before reporting success. No row is inserted when any row is
// invalid.
func (uc *CreateExpensesUseCase) Execute(
	ctx context.Context,
	input CreateExpensesInput,
) ([]*entity.Expense, error) {
	if len(input.Rows) == 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeEmptyBatch,
			"at least one expense is required",
			domainerror.ErrEmptyBatch,
		)
	}

	expenses := make([]*entity.Expense, 0, len(input.Rows))
	for i, row := range input.Rows {
		if err := validateRow(i, row); err != nil {
			return nil, err
		}
		expenses = append(expenses, entity.NewExpense(
			row.Description,
			row.Amount,
			row.Category,
			row.StoreName,
			row.Date,
			entity.RecordStatus(row.Status),
		))
	}

	if err := uc.expenseRepo.CreateBatch(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to create expenses: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return expenses, nil
}

// validateRow checks the submitted fields before any store call is made.
func validateRow(index int, row ExpenseRow) error {
	if row.Description == "" {
		return domainerror.NewRecordError(
			domainerror.ErrCodeEmptyDescription,
			fmt.Sprintf("row %d: description is required", index+1),
			domainerror.ErrEmptyDescription,
		)
	}
	if row.Amount.IsNegative() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			fmt.Sprintf("row %d: amount must be zero or greater", index+1),
			domainerror.ErrInvalidAmount,
		)
	}
	if row.Date.IsZero() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingDate,
			fmt.Sprintf("row %d: date is required", index+1),
			domainerror.ErrMissingDate,
		)
	}
	if !entity.IsValidRecordStatus(entity.RecordStatus(row.Status)) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidStatus,
			fmt.Sprintf("row %d: status must be cleared, pending or flagged", index+1),
			domainerror.ErrInvalidStatus,
		)
	}
	return nil
}

// invalidateSummaries drops every cached summary so the next read is
// guaranteed fresh. A write is never reported successful while a stale
// summary could still be served.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateAll(ctx); err != nil {
		slog.Warn("summary cache invalidation failed", "error", err)
	}
}
