// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage represents a message submitted through the public site's
// contact form.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Subject   string
	Body      string
	CreatedAt time.Time
}

// NewContactMessage creates a new ContactMessage entity.
func NewContactMessage(name, email, phone, subject, body string) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}
