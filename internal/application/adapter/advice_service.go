// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdviceRequest carries the computed figures the advisor reasons over.
type AdviceRequest struct {
	Period             string
	TotalExpenses      string
	TotalIncome        string
	Profit             string
	ProfitMargin       float64
	TopExpenseCategory string
	TopIncomeSource    string
	BudgetUsage        *float64 // nil when no budget exists for the month
}

// AdviceService generates free-form financial commentary for a report. It
// supplements the deterministic recommendation table, never replaces it.
type AdviceService interface {
	// IsAvailable checks if the advisor is configured.
	IsAvailable() bool

	// Advise returns a short list of advice paragraphs.
	Advise(ctx context.Context, request *AdviceRequest) ([]string, error)
}
