// Package income contains the income record use cases.
package income

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

// IncomeRow represents one income record in a batch submission.
type IncomeRow struct {
	Description string
	Amount      decimal.Decimal
	Source      string
	Date        time.Time
	Status      string
}

// CreateIncomeInput represents the input for creating income records.
type CreateIncomeInput struct {
	Rows []IncomeRow
}

// CreateIncomeUseCase handles batch creation of income records.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.SummaryCache
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	cache adapter.SummaryCache,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute validates every row, inserts the batch, and invalidates cached
// summaries before reporting success. No row is inserted when any row is
// invalid.
func (uc *CreateIncomeUseCase) Execute(
	ctx context.Context,
	input CreateIncomeInput,
) ([]*entity.Income, error) {
	if len(input.Rows) == 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeEmptyBatch,
			"at least one income record is required",
			domainerror.ErrEmptyBatch,
		)
	}

	records := make([]*entity.Income, 0, len(input.Rows))
	for i, row := range input.Rows {
		if err := validateRow(i, row); err != nil {
			return nil, err
		}
		records = append(records, entity.NewIncome(
			row.Description,
			row.Amount,
			row.Source,
			row.Date,
			entity.RecordStatus(row.Status),
		))
	}

	if err := uc.incomeRepo.CreateBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to create income records: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return records, nil
}

// validateRow checks the submitted fields before any store call is made.
func validateRow(index int, row IncomeRow) error {
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
// guaranteed fresh.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateAll(ctx); err != nil {
		slog.Warn("summary cache invalidation failed", "error", err)
	}
}
