// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// ExpenseRowRequest represents one expense row in a batch submission.
type ExpenseRowRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
	StoreName   string  `json:"store_name,omitempty" binding:"omitempty,max=100"`
	Date        string  `json:"date" binding:"required"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=cleared pending flagged"`
}

// CreateExpensesRequest represents the request body for expense batch creation.
type CreateExpensesRequest struct {
	Expenses []ExpenseRowRequest `json:"expenses" binding:"required,min=1"`
}

// UpdateExpenseRequest represents the request body for a partial expense edit.
type UpdateExpenseRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	StoreName   *string  `json:"store_name,omitempty" binding:"omitempty,max=100"`
	Date        *string  `json:"date,omitempty"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=cleared pending flagged"`
}

// IncomeRowRequest represents one income row in a batch submission.
type IncomeRowRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Source      string  `json:"source,omitempty" binding:"omitempty,max=100"`
	Date        string  `json:"date" binding:"required"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=cleared pending flagged"`
}

// CreateIncomeRequest represents the request body for income batch creation.
type CreateIncomeRequest struct {
	Income []IncomeRowRequest `json:"income" binding:"required,min=1"`
}

// UpdateIncomeRequest represents the request body for a partial income edit.
type UpdateIncomeRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty"`
	Source      *string  `json:"source,omitempty" binding:"omitempty,max=100"`
	Date        *string  `json:"date,omitempty"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=cleared pending flagged"`
}

// ExpenseResponse represents a single expense record in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	StoreName   string    `json:"store_name"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeResponse represents a single income record in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Source      string    `json:"source"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expense records.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// IncomeListResponse represents the response for listing income records.
type IncomeListResponse struct {
	Income []IncomeResponse `json:"income"`
	Count  int              `json:"count"`
}

// ToExpenseResponse converts an Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.String(),
		Category:    expense.Category,
		StoreName:   expense.StoreName,
		Date:        expense.Date.Format("2006-01-02"),
		Status:      string(expense.Status),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts a slice of Expense entities to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, ToExpenseResponse(expense))
	}
	return ExpenseListResponse{
		Expenses: responses,
		Count:    len(responses),
	}
}

// ToIncomeResponse converts an Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID.String(),
		Description: income.Description,
		Amount:      income.Amount.String(),
		Source:      income.Source,
		Date:        income.Date.Format("2006-01-02"),
		Status:      string(income.Status),
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}

// ToIncomeListResponse converts a slice of Income entities to a list response.
func ToIncomeListResponse(income []*entity.Income) IncomeListResponse {
	responses := make([]IncomeResponse, 0, len(income))
	for _, record := range income {
		responses = append(responses, ToIncomeResponse(record))
	}
	return IncomeListResponse{
		Income: responses,
		Count:  len(responses),
	}
}
