// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Standard income sources. Like expense categories, the source is stored as
// free text so "Other" entries can carry a custom name.
const (
	SourceEggSales       = "Egg Sales"
	SourceChickenSales   = "Chicken Sales"
	SourceChickSales     = "Chick Sales"
	SourceEquipmentSales = "Equipment Sales"
	SourceOther          = "Other"
)

// Income represents a single farm income record.
type Income struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Source      string
	Date        time.Time
	Status      RecordStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(
	description string,
	amount decimal.Decimal,
	source string,
	date time.Time,
	status RecordStatus,
) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Source:      source,
		Date:        date,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
