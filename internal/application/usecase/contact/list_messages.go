package contact

import (
	"context"
	"fmt"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
)

const defaultPageSize = 50

// ListMessagesInput represents pagination for the admin message list.
type ListMessagesInput struct {
	Limit  int
	Offset int
}

// ListMessagesUseCase handles listing contact messages for the admin.
type ListMessagesUseCase struct {
	contactRepo adapter.ContactMessageRepository
}

// NewListMessagesUseCase creates a new ListMessagesUseCase instance.
func NewListMessagesUseCase(contactRepo adapter.ContactMessageRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{contactRepo: contactRepo}
}

// Execute returns messages newest first.
func (uc *ListMessagesUseCase) Execute(
	ctx context.Context,
	input ListMessagesInput,
) ([]*entity.ContactMessage, error) {
	limit := input.Limit
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	messages, err := uc.contactRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
