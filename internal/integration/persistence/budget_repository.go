package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// CreateWithCategories creates the budget and its category rows in one
// transaction.
func (r *budgetRepository) CreateWithCategories(
	ctx context.Context,
	budget *entity.MonthlyBudget,
	categories []*entity.BudgetCategory,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.MonthlyBudgetFromEntity(budget)).Error; err != nil {
			return err
		}
		for _, category := range categories {
			if err := tx.Create(model.BudgetCategoryFromEntity(category)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateSchemaError(err)
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyBudget, error) {
	var budgetModel model.MonthlyBudgetModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budgetNotFound()
		}
		return nil, translateSchemaError(err)
	}
	return budgetModel.ToEntity(), nil
}

// FindByMonthYear retrieves the single budget for a (month, year) pair.
func (r *budgetRepository) FindByMonthYear(ctx context.Context, month, year int) (*entity.MonthlyBudget, error) {
	var budgetModel model.MonthlyBudgetModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("month = ? AND year = ?", month, year).
			First(&budgetModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budgetNotFound()
		}
		return nil, translateSchemaError(err)
	}
	return budgetModel.ToEntity(), nil
}

// ExistsByMonthYear reports whether a budget exists for the period.
func (r *budgetRepository) ExistsByMonthYear(ctx context.Context, month, year int) (bool, error) {
	var count int64
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&model.MonthlyBudgetModel{}).
			Where("month = ? AND year = ?", month, year).
			Count(&count).Error
	})
	if err != nil {
		return false, translateSchemaError(err)
	}
	return count > 0, nil
}

// FindCategories retrieves the category allocations owned by a budget.
func (r *budgetRepository) FindCategories(ctx context.Context, budgetID uuid.UUID) ([]*entity.BudgetCategory, error) {
	var categoryModels []model.BudgetCategoryModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("budget_id = ?", budgetID).
			Order("allocated_amount DESC").
			Find(&categoryModels).Error
	})
	if err != nil {
		return nil, translateSchemaError(err)
	}

	categories := make([]*entity.BudgetCategory, len(categoryModels))
	for i, m := range categoryModels {
		categories[i] = m.ToEntity()
	}
	return categories, nil
}

// Update saves changes to a budget. Category rows are not touched.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.MonthlyBudget) error {
	return translateSchemaError(
		r.db.WithContext(ctx).Save(model.MonthlyBudgetFromEntity(budget)).Error,
	)
}

// DeleteWithCategories deletes category rows before the parent budget, in
// one transaction.
func (r *budgetRepository) DeleteWithCategories(ctx context.Context, budgetID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", budgetID).Delete(&model.BudgetCategoryModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", budgetID).Delete(&model.MonthlyBudgetModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return budgetNotFound()
		}
		return nil
	})
	return translateSchemaError(err)
}

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}
