package income

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

// UpdateIncomeInput represents a partial edit of an income record. Nil
// fields are left unchanged.
type UpdateIncomeInput struct {
	ID          uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Source      *string
	Date        *time.Time
	Status      *string
}

// UpdateIncomeUseCase handles editing an income record.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.SummaryCache
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	cache adapter.SummaryCache,
) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute applies the edit and invalidates cached summaries. Concurrent
// edits are last-write-wins at the store level.
func (uc *UpdateIncomeUseCase) Execute(
	ctx context.Context,
	input UpdateIncomeInput,
) (*entity.Income, error) {
	record, err := uc.incomeRepo.FindByID(ctx, input.ID)
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
		record.Description = *input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be zero or greater",
				domainerror.ErrInvalidAmount,
			)
		}
		record.Amount = *input.Amount
	}
	if input.Source != nil {
		record.Source = *input.Source
	}
	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.Status != nil {
		if !entity.IsValidRecordStatus(entity.RecordStatus(*input.Status)) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidStatus,
				"status must be cleared, pending or flagged",
				domainerror.ErrInvalidStatus,
			)
		}
		record.Status = entity.RecordStatus(*input.Status)
	}
	record.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update income record: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return record, nil
}
