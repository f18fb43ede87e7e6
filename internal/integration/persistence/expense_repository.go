package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// CreateBatch inserts the records in a single statement.
func (r *expenseRepository) CreateBatch(ctx context.Context, expenses []*entity.Expense) error {
	models := make([]*model.ExpenseModel, len(expenses))
	for i, expense := range expenses {
		models[i] = model.ExpenseFromEntity(expense)
	}
	return r.db.WithContext(ctx).Create(models).Error
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"expense not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, err
	}
	return expenseModel.ToEntity(), nil
}

// FindFromDate retrieves expenses with date >= start, newest first. There is
// no upper bound; future-dated records are included.
func (r *expenseRepository) FindFromDate(ctx context.Context, start time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("date >= ?", start).
			Order("date DESC, created_at DESC").
			Find(&expenseModels).Error
	})
	if err != nil {
		return nil, err
	}
	return toExpenseEntities(expenseModels), nil
}

// FindInRange retrieves expenses with start <= date < end, newest first.
func (r *expenseRepository) FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("date >= ? AND date < ?", start, end).
			Order("date DESC, created_at DESC").
			Find(&expenseModels).Error
	})
	if err != nil {
		return nil, err
	}
	return toExpenseEntities(expenseModels), nil
}

// Update saves changes to an expense record.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	return result.Error
}

// Delete permanently removes an expense record.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"expense not found",
			domainerror.ErrRecordNotFound,
		)
	}
	return nil
}

func toExpenseEntities(models []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(models))
	for i, m := range models {
		expenses[i] = m.ToEntity()
	}
	return expenses
}
