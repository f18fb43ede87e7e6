// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// SubmitContactMessageRequest represents the public contact form body.
type SubmitContactMessageRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Subject string `json:"subject,omitempty" binding:"omitempty,max=200"`
	Body    string `json:"body" binding:"required,min=1,max=5000"`
}

// ContactMessageResponse represents a contact message in API responses.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessageListResponse represents the response for listing contact messages.
type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
	Count    int                      `json:"count"`
}

// ToContactMessageResponse converts a ContactMessage entity to a response DTO.
func ToContactMessageResponse(message *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Phone:     message.Phone,
		Subject:   message.Subject,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}
}

// ToContactMessageListResponse converts contact message entities to a list response.
func ToContactMessageListResponse(messages []*entity.ContactMessage) ContactMessageListResponse {
	responses := make([]ContactMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, ToContactMessageResponse(message))
	}
	return ContactMessageListResponse{
		Messages: responses,
		Count:    len(responses),
	}
}
