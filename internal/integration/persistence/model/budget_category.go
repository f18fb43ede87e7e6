package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// BudgetCategoryModel represents the budget_categories table in the database.
type BudgetCategoryModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryName    string          `gorm:"type:varchar(100);not null"`
	CategoryType    string          `gorm:"type:varchar(10);not null"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SpentAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	Budget *MonthlyBudgetModel `gorm:"foreignKey:BudgetID;references:ID"`
}

// TableName returns the table name for the BudgetCategoryModel.
func (BudgetCategoryModel) TableName() string {
	return "budget_categories"
}

// ToEntity converts a BudgetCategoryModel to a domain BudgetCategory entity.
func (m *BudgetCategoryModel) ToEntity() *entity.BudgetCategory {
	return &entity.BudgetCategory{
		ID:              m.ID,
		BudgetID:        m.BudgetID,
		CategoryName:    m.CategoryName,
		CategoryType:    entity.BudgetCategoryType(m.CategoryType),
		AllocatedAmount: m.AllocatedAmount,
		SpentAmount:     m.SpentAmount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// BudgetCategoryFromEntity creates a BudgetCategoryModel from a domain entity.
func BudgetCategoryFromEntity(category *entity.BudgetCategory) *BudgetCategoryModel {
	return &BudgetCategoryModel{
		ID:              category.ID,
		BudgetID:        category.BudgetID,
		CategoryName:    category.CategoryName,
		CategoryType:    string(category.CategoryType),
		AllocatedAmount: category.AllocatedAmount,
		SpentAmount:     category.SpentAmount,
		CreatedAt:       category.CreatedAt,
		UpdatedAt:       category.UpdatedAt,
	}
}
