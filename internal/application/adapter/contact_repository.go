package adapter

import (
	"context"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// ContactMessageRepository persists messages submitted through the public
// contact form.
type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindByID(ctx context.Context, id string) (*entity.ContactMessage, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, error)
}
