package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	"github.com/blessing-poultries/backend/internal/integration/persistence/model"
)

// contactRepository implements the adapter.ContactMessageRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact message repository instance.
func NewContactRepository(db *gorm.DB) adapter.ContactMessageRepository {
	return &contactRepository{
		db: db,
	}
}

// Create stores a contact message.
func (r *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(model.ContactMessageFromEntity(message)).Error
}

// FindByID retrieves a contact message by its ID.
func (r *contactRepository) FindByID(ctx context.Context, id string) (*entity.ContactMessage, error) {
	var messageModel model.ContactMessageModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&messageModel).Error
	})
	if err != nil {
		return nil, err
	}
	return messageModel.ToEntity(), nil
}

// List retrieves contact messages newest first.
func (r *contactRepository) List(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, error) {
	var messageModels []model.ContactMessageModel
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&messageModels).Error
	})
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.ContactMessage, len(messageModels))
	for i, m := range messageModels {
		messages[i] = m.ToEntity()
	}
	return messages, nil
}
