// Package contact contains the public contact form use cases.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// SubmitMessageInput represents a contact form submission.
type SubmitMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// SubmitMessageUseCase handles public contact form submissions.
type SubmitMessageUseCase struct {
	contactRepo  adapter.ContactMessageRepository
	emailService adapter.EmailService
}

// NewSubmitMessageUseCase creates a new SubmitMessageUseCase instance.
func NewSubmitMessageUseCase(
	contactRepo adapter.ContactMessageRepository,
	emailService adapter.EmailService,
) *SubmitMessageUseCase {
	return &SubmitMessageUseCase{
		contactRepo:  contactRepo,
		emailService: emailService,
	}
}

// Execute stores the message and queues a notification to the farm inbox.
// The submission succeeds even when queueing fails; the message is already
// persisted and visible to the admin.
func (uc *SubmitMessageUseCase) Execute(
	ctx context.Context,
	input SubmitMessageInput,
) (*entity.ContactMessage, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	message := entity.NewContactMessage(input.Name, input.Email, input.Phone, input.Subject, input.Body)
	if err := uc.contactRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if uc.emailService != nil {
		err := uc.emailService.QueueContactNotification(ctx, adapter.QueueContactNotificationInput{
			MessageID:   message.ID.String(),
			SenderName:  message.Name,
			SenderEmail: message.Email,
			Subject:     message.Subject,
			Body:        message.Body,
		})
		if err != nil {
			slog.Error("failed to queue contact notification", "message_id", message.ID, "error", err)
		}
	}

	return message, nil
}

func (uc *SubmitMessageUseCase) validateInput(input SubmitMessageInput) error {
	if input.Name == "" || input.Email == "" || input.Body == "" {
		return domainerror.NewContactError(
			domainerror.ErrCodeMissingContactFields,
			"name, email and message are required",
			domainerror.ErrMissingContactFields,
		)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return domainerror.NewContactError(
			domainerror.ErrCodeInvalidContactEmail,
			"invalid email address",
			domainerror.ErrInvalidContactEmail,
		)
	}
	return nil
}
