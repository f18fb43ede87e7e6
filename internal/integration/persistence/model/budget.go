package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// MonthlyBudgetModel represents the monthly_budgets table in the database.
// A unique index over (month, year) keeps one budget authoritative per period.
type MonthlyBudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Month        int             `gorm:"not null;uniqueIndex:idx_budget_period"`
	Year         int             `gorm:"not null;uniqueIndex:idx_budget_period"`
	BudgetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ExpenseLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IncomeTarget decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes        string          `gorm:"type:text"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MonthlyBudgetModel.
func (MonthlyBudgetModel) TableName() string {
	return "monthly_budgets"
}

// ToEntity converts a MonthlyBudgetModel to a domain MonthlyBudget entity.
func (m *MonthlyBudgetModel) ToEntity() *entity.MonthlyBudget {
	return &entity.MonthlyBudget{
		ID:           m.ID,
		Month:        m.Month,
		Year:         m.Year,
		BudgetAmount: m.BudgetAmount,
		ExpenseLimit: m.ExpenseLimit,
		IncomeTarget: m.IncomeTarget,
		Notes:        m.Notes,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// MonthlyBudgetFromEntity creates a MonthlyBudgetModel from a domain entity.
func MonthlyBudgetFromEntity(budget *entity.MonthlyBudget) *MonthlyBudgetModel {
	return &MonthlyBudgetModel{
		ID:           budget.ID,
		Month:        budget.Month,
		Year:         budget.Year,
		BudgetAmount: budget.BudgetAmount,
		ExpenseLimit: budget.ExpenseLimit,
		IncomeTarget: budget.IncomeTarget,
		Notes:        budget.Notes,
		CreatedBy:    budget.CreatedBy,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}
