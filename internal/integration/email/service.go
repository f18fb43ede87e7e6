// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	inboxEmail string
	inboxName  string
}

// NewService creates a new email service. Notifications are delivered to the
// farm's back-office inbox.
func NewService(queue adapter.EmailQueueRepository, inboxEmail, inboxName string) *Service {
	return &Service{
		queue:      queue,
		inboxEmail: inboxEmail,
		inboxName:  inboxName,
	}
}

// QueueContactNotification queues a notification email for a contact form
// submission.
func (s *Service) QueueContactNotification(ctx context.Context, input adapter.QueueContactNotificationInput) error {
	subject := fmt.Sprintf("New contact message from %s - Blessing Poultries", input.SenderName)

	templateData := map[string]interface{}{
		"message_id":   input.MessageID,
		"sender_name":  input.SenderName,
		"sender_email": input.SenderEmail,
		"subject":      input.Subject,
		"body":         input.Body,
	}

	job := entity.NewEmailJob(
		entity.TemplateContactNotification,
		s.inboxEmail,
		s.inboxName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue contact notification email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
