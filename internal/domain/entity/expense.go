// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Standard expense categories. Category is stored as free text so that
// "Other" entries can carry a custom name typed by the admin.
const (
	CategoryFeed           = "Feed"
	CategoryMedication     = "Medication"
	CategoryEquipment      = "Equipment"
	CategoryLabor          = "Labor"
	CategoryUtilities      = "Utilities"
	CategoryTransportation = "Transportation"
	CategoryMaintenance    = "Maintenance"
	CategorySupplies       = "Supplies"
	CategoryOther          = "Other"
)

// Expense represents a single farm expense record.
type Expense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	StoreName   string
	Date        time.Time
	Status      RecordStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	description string,
	amount decimal.Decimal,
	category string,
	storeName string,
	date time.Time,
	status RecordStatus,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Category:    category,
		StoreName:   storeName,
		Date:        date,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
