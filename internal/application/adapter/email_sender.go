package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueContactNotification queues a notification to the farm inbox for a
	// newly submitted contact message.
	QueueContactNotification(ctx context.Context, input QueueContactNotificationInput) error
}

// QueueContactNotificationInput represents the input for queueing a contact notification email.
type QueueContactNotificationInput struct {
	MessageID   string
	SenderName  string
	SenderEmail string
	Subject     string
	Body        string
}
