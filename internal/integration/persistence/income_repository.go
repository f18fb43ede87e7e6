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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// CreateBatch inserts the records in a single statement.
func (r *incomeRepository) CreateBatch(ctx context.Context, records []*entity.Income) error {
	models := make([]*model.IncomeModel, len(records))
	for i, record := range records {
		models[i] = model.IncomeFromEntity(record)
	}
	return r.db.WithContext(ctx).Create(models).Error
}

// FindByID retrieves an income record by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"income record not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, err
	}
	return incomeModel.ToEntity(), nil
}

// FindFromDate retrieves income records with date >= start, newest first.
// There is no upper bound; future-dated records are included.
func (r *incomeRepository) FindFromDate(ctx context.Context, start time.Time) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("date >= ?", start).
			Order("date DESC, created_at DESC").
			Find(&incomeModels).Error
	})
	if err != nil {
		return nil, err
	}
	return toIncomeEntities(incomeModels), nil
}

// FindInRange retrieves income records with start <= date < end, newest first.
func (r *incomeRepository) FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("date >= ? AND date < ?", start, end).
			Order("date DESC, created_at DESC").
			Find(&incomeModels).Error
	})
	if err != nil {
		return nil, err
	}
	return toIncomeEntities(incomeModels), nil
}

// Update saves changes to an income record.
func (r *incomeRepository) Update(ctx context.Context, record *entity.Income) error {
	incomeModel := model.IncomeFromEntity(record)
	return r.db.WithContext(ctx).Save(incomeModel).Error
}

// Delete permanently removes an income record.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IncomeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"income record not found",
			domainerror.ErrRecordNotFound,
		)
	}
	return nil
}

func toIncomeEntities(models []model.IncomeModel) []*entity.Income {
	records := make([]*entity.Income, len(models))
	for i, m := range models {
		records[i] = m.ToEntity()
	}
	return records
}
