// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/blessing-poultries/backend/internal/application/usecase/budget"
	"github.com/blessing-poultries/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Month        int     `json:"month" binding:"required,min=1,max=12"`
	Year         int     `json:"year" binding:"required,min=2000,max=9999"`
	BudgetAmount float64 `json:"budget_amount" binding:"required"`
	Notes        string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateBudgetRequest represents the request body for a budget amount update.
type UpdateBudgetRequest struct {
	BudgetAmount float64 `json:"budget_amount" binding:"required"`
	Notes        *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// BudgetResponse represents a monthly budget in API responses.
type BudgetResponse struct {
	ID           string    `json:"id"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	BudgetAmount string    `json:"budget_amount"`
	ExpenseLimit string    `json:"expense_limit"`
	IncomeTarget string    `json:"income_target"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BudgetCategoryResponse represents a budget category allocation.
type BudgetCategoryResponse struct {
	ID              string `json:"id"`
	CategoryName    string `json:"category_name"`
	AllocatedAmount string `json:"allocated_amount"`
}

// BudgetDetailResponse represents a budget with its category allocations.
type BudgetDetailResponse struct {
	Budget     BudgetResponse           `json:"budget"`
	Categories []BudgetCategoryResponse `json:"categories"`
}

// BudgetStatusResponse represents the monthly budget tracker output.
type BudgetStatusResponse struct {
	Month            int                      `json:"month"`
	Year             int                      `json:"year"`
	Budget           *BudgetResponse          `json:"budget,omitempty"`
	Categories       []BudgetCategoryResponse `json:"categories,omitempty"`
	Spent            string                   `json:"spent"`
	ActualIncome     string                   `json:"actual_income"`
	Remaining        string                   `json:"remaining"`
	Percentage       float64                  `json:"percentage"`
	Savings          string                   `json:"savings"`
	Overspent        string                   `json:"overspent"`
	NetFlow          string                   `json:"net_flow"`
	BudgetEfficiency float64                  `json:"budget_efficiency"`
	IsOnTrack        bool                     `json:"is_on_track"`
	FlowStatus       string                   `json:"flow_status"`
	NoBudget         bool                     `json:"no_budget"`
}

// ToBudgetResponse converts a MonthlyBudget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.MonthlyBudget) BudgetResponse {
	return BudgetResponse{
		ID:           b.ID.String(),
		Month:        b.Month,
		Year:         b.Year,
		BudgetAmount: b.BudgetAmount.String(),
		ExpenseLimit: b.ExpenseLimit.String(),
		IncomeTarget: b.IncomeTarget.String(),
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToBudgetCategoryResponses converts budget category entities to DTOs.
func ToBudgetCategoryResponses(categories []*entity.BudgetCategory) []BudgetCategoryResponse {
	responses := make([]BudgetCategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, BudgetCategoryResponse{
			ID:              category.ID.String(),
			CategoryName:    category.CategoryName,
			AllocatedAmount: category.AllocatedAmount.String(),
		})
	}
	return responses
}

// ToBudgetStatusResponse converts a BudgetStatus to a BudgetStatusResponse DTO.
func ToBudgetStatusResponse(status *budget.BudgetStatus) BudgetStatusResponse {
	response := BudgetStatusResponse{
		Month:            status.Month,
		Year:             status.Year,
		Spent:            status.Spent.String(),
		ActualIncome:     status.ActualIncome.String(),
		Remaining:        status.Remaining.String(),
		Percentage:       status.Percentage,
		Savings:          status.Savings.String(),
		Overspent:        status.Overspent.String(),
		NetFlow:          status.NetFlow.String(),
		BudgetEfficiency: status.BudgetEfficiency,
		IsOnTrack:        status.IsOnTrack,
		FlowStatus:       status.FlowStatus,
		NoBudget:         status.NoBudget,
	}

	if status.Budget != nil {
		budgetResponse := ToBudgetResponse(status.Budget)
		response.Budget = &budgetResponse
		response.Categories = ToBudgetCategoryResponses(status.Categories)
	}

	return response
}
