// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// CreateBatch inserts one or more expense records in a single operation.
	CreateBatch(ctx context.Context, expenses []*entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindFromDate retrieves all expenses with date >= start, ordered by
	// date descending. There is no upper bound: future-dated records are
	// included.
	FindFromDate(ctx context.Context, start time.Time) ([]*entity.Expense, error)

	// FindInRange retrieves all expenses with start <= date < end.
	FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error)

	// Update updates an existing expense record.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete permanently removes an expense record.
	Delete(ctx context.Context, id uuid.UUID) error
}
