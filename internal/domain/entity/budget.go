// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget derivation ratios. The expense limit and income target are always
// derived from the budget amount, never stored independently by callers.
var (
	expenseLimitRatio = decimal.NewFromFloat(0.8)
	incomeTargetRatio = decimal.NewFromFloat(1.2)
)

// BudgetCategoryType distinguishes expense allocations from income targets.
type BudgetCategoryType string

const (
	BudgetCategoryTypeExpense BudgetCategoryType = "expense"
	BudgetCategoryTypeIncome  BudgetCategoryType = "income"
)

// MonthlyBudget represents the authoritative budget for one (month, year).
type MonthlyBudget struct {
	ID           uuid.UUID
	Month        int // 1-12
	Year         int
	BudgetAmount decimal.Decimal
	ExpenseLimit decimal.Decimal
	IncomeTarget decimal.Decimal
	Notes        string
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewMonthlyBudget creates a new MonthlyBudget, deriving the expense limit
// and income target from the budget amount.
func NewMonthlyBudget(month, year int, budgetAmount decimal.Decimal, notes string, createdBy uuid.UUID) *MonthlyBudget {
	now := time.Now().UTC()

	return &MonthlyBudget{
		ID:           uuid.New(),
		Month:        month,
		Year:         year,
		BudgetAmount: budgetAmount,
		ExpenseLimit: budgetAmount.Mul(expenseLimitRatio),
		IncomeTarget: budgetAmount.Mul(incomeTargetRatio),
		Notes:        notes,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyAmount updates the budget amount and re-derives the expense limit and
// income target. Category allocations are left untouched.
func (b *MonthlyBudget) ApplyAmount(budgetAmount decimal.Decimal) {
	b.BudgetAmount = budgetAmount
	b.ExpenseLimit = budgetAmount.Mul(expenseLimitRatio)
	b.IncomeTarget = budgetAmount.Mul(incomeTargetRatio)
	b.UpdatedAt = time.Now().UTC()
}

// BudgetCategory represents one allocation line owned by a MonthlyBudget.
type BudgetCategory struct {
	ID              uuid.UUID
	BudgetID        uuid.UUID
	CategoryName    string
	CategoryType    BudgetCategoryType
	AllocatedAmount decimal.Decimal
	SpentAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// defaultAllocation is one line of the default category split.
type defaultAllocation struct {
	name  string
	share decimal.Decimal
}

// defaultAllocations is the split applied on budget creation. The shares sum
// to exactly 1, so the allocated amounts sum to exactly the budget amount.
var defaultAllocations = []defaultAllocation{
	{CategoryFeed, decimal.NewFromFloat(0.40)},
	{CategoryLabor, decimal.NewFromFloat(0.25)},
	{CategoryMedication, decimal.NewFromFloat(0.15)},
	{CategoryEquipment, decimal.NewFromFloat(0.10)},
	{CategoryUtilities, decimal.NewFromFloat(0.10)},
}

// DefaultBudgetCategories builds the five default allocation rows for a
// freshly created budget.
func DefaultBudgetCategories(budget *MonthlyBudget) []*BudgetCategory {
	now := time.Now().UTC()

	categories := make([]*BudgetCategory, 0, len(defaultAllocations))
	for _, alloc := range defaultAllocations {
		categories = append(categories, &BudgetCategory{
			ID:              uuid.New(),
			BudgetID:        budget.ID,
			CategoryName:    alloc.name,
			CategoryType:    BudgetCategoryTypeExpense,
			AllocatedAmount: budget.BudgetAmount.Mul(alloc.share),
			SpentAmount:     decimal.Zero,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return categories
}
