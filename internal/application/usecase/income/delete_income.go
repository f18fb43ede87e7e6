package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/application/adapter"
)

// DeleteIncomeUseCase handles permanent deletion of an income record.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.SummaryCache
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	cache adapter.SummaryCache,
) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute deletes the record permanently. There is no soft delete.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.incomeRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.incomeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete income record: %w", err)
	}

	invalidateSummaries(ctx, uc.cache)

	return nil
}
