// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for monthly budget persistence operations.
type BudgetRepository interface {
	// CreateWithCategories creates a budget and its category allocations in a
	// single transaction. Either everything is committed or nothing is.
	CreateWithCategories(ctx context.Context, budget *entity.MonthlyBudget, categories []*entity.BudgetCategory) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyBudget, error)

	// FindByMonthYear retrieves the single authoritative budget for a period.
	// Returns domain ErrBudgetNotFound when none exists.
	FindByMonthYear(ctx context.Context, month, year int) (*entity.MonthlyBudget, error)

	// ExistsByMonthYear reports whether a budget exists for the period.
	ExistsByMonthYear(ctx context.Context, month, year int) (bool, error)

	// FindCategories retrieves the category allocations owned by a budget.
	FindCategories(ctx context.Context, budgetID uuid.UUID) ([]*entity.BudgetCategory, error)

	// Update updates an existing budget. Category rows are not touched.
	Update(ctx context.Context, budget *entity.MonthlyBudget) error

	// DeleteWithCategories deletes the budget's category rows and then the
	// budget itself, in that order, within one transaction.
	DeleteWithCategories(ctx context.Context, budgetID uuid.UUID) error
}
