// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// CreateBatch inserts one or more income records in a single operation.
	CreateBatch(ctx context.Context, incomes []*entity.Income) error

	// FindByID retrieves an income record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindFromDate retrieves all income records with date >= start, ordered
	// by date descending. There is no upper bound.
	FindFromDate(ctx context.Context, start time.Time) ([]*entity.Income, error)

	// FindInRange retrieves all income records with start <= date < end.
	FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Income, error)

	// Update updates an existing income record.
	Update(ctx context.Context, income *entity.Income) error

	// Delete permanently removes an income record.
	Delete(ctx context.Context, id uuid.UUID) error
}
