package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// ContactMessageModel represents the contact_messages table in the database.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(30)"`
	Subject   string    `gorm:"type:varchar(255)"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the ContactMessageModel.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// ToEntity converts a ContactMessageModel to a domain ContactMessage entity.
func (m *ContactMessageModel) ToEntity() *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

// ContactMessageFromEntity creates a ContactMessageModel from a domain entity.
func ContactMessageFromEntity(message *entity.ContactMessage) *ContactMessageModel {
	return &ContactMessageModel{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Phone:     message.Phone,
		Subject:   message.Subject,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}
}
