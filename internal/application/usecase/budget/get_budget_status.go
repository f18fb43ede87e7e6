// Package budget contains the monthly budget tracking use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/application/usecase/finance"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// Flow status classifications for the month's net cash flow.
const (
	FlowStatusPositive = "positive"
	FlowStatusNegative = "negative"
	FlowStatusNeutral  = "neutral"
)

// onTrackThreshold is the budget usage percentage at or below which the
// month counts as on track.
const onTrackThreshold = 80.0

// BudgetStatus represents the tracker's view of the current calendar month.
// Every numeric field is present and zero when not computable.
type BudgetStatus struct {
	Month            int                      `json:"month"`
	Year             int                      `json:"year"`
	Budget           *entity.MonthlyBudget    `json:"budget,omitempty"`
	Categories       []*entity.BudgetCategory `json:"categories,omitempty"`
	Spent            decimal.Decimal          `json:"spent"`
	ActualIncome     decimal.Decimal          `json:"actual_income"`
	Remaining        decimal.Decimal          `json:"remaining"`
	Percentage       float64                  `json:"percentage"`
	Savings          decimal.Decimal          `json:"savings"`
	Overspent        decimal.Decimal          `json:"overspent"`
	NetFlow          decimal.Decimal          `json:"net_flow"`
	BudgetEfficiency float64                  `json:"budget_efficiency"`
	IsOnTrack        bool                     `json:"is_on_track"`
	FlowStatus       string                   `json:"flow_status"`
	NoBudget         bool                     `json:"no_budget"`
}

// GetBudgetStatusUseCase handles computing the budget status for the current month.
type GetBudgetStatusUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
	now         func() time.Time
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		now:         time.Now,
	}
}

// Execute computes the budget status for the current calendar month. The
// tracker always uses the calendar month regardless of the aggregation
// engine's active period selector.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context) (*BudgetStatus, error) {
	now := uc.now()
	start, end := finance.MonthBounds(now)

	expenses, err := uc.expenseRepo.FindInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month expenses: %w", err)
	}
	income, err := uc.incomeRepo.FindInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month income: %w", err)
	}

	spent := decimal.Zero
	for _, expense := range expenses {
		spent = spent.Add(expense.Amount)
	}
	actualIncome := decimal.Zero
	for _, record := range income {
		actualIncome = actualIncome.Add(record.Amount)
	}

	status := &BudgetStatus{
		Month:        int(now.Month()),
		Year:         now.Year(),
		Spent:        spent,
		ActualIncome: actualIncome,
		Remaining:    decimal.Zero,
		Savings:      decimal.Zero,
		Overspent:    decimal.Zero,
		NetFlow:      actualIncome.Sub(spent),
	}
	status.FlowStatus = classifyFlow(status.NetFlow)

	monthlyBudget, err := uc.budgetRepo.FindByMonthYear(ctx, status.Month, status.Year)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			status.NoBudget = true
			return status, nil
		}
		return nil, fmt.Errorf("failed to fetch monthly budget: %w", err)
	}

	categories, err := uc.budgetRepo.FindCategories(ctx, monthlyBudget.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget categories: %w", err)
	}

	status.Budget = monthlyBudget
	status.Categories = categories
	status.Remaining = monthlyBudget.BudgetAmount.Sub(spent)
	status.Savings = decimal.Max(decimal.Zero, status.Remaining)
	status.Overspent = decimal.Max(decimal.Zero, status.Remaining.Neg())

	if monthlyBudget.BudgetAmount.IsPositive() {
		hundred := decimal.NewFromInt(100)
		pct := spent.Mul(hundred).Div(monthlyBudget.BudgetAmount)
		status.Percentage, _ = pct.Round(2).Float64()

		efficiency := status.Remaining.Mul(hundred).Div(monthlyBudget.BudgetAmount)
		status.BudgetEfficiency, _ = efficiency.Round(2).Float64()
	}
	status.IsOnTrack = status.Percentage <= onTrackThreshold

	return status, nil
}

// classifyFlow maps a net flow amount onto a flow status.
func classifyFlow(netFlow decimal.Decimal) string {
	switch {
	case netFlow.IsPositive():
		return FlowStatusPositive
	case netFlow.IsNegative():
		return FlowStatusNegative
	default:
		return FlowStatusNeutral
	}
}
