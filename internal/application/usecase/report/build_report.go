// Package report contains the report building and advisory use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/usecase/budget"
	"github.com/blessing-poultries/backend/internal/application/usecase/finance"
)

// Budget usage classifications for the report's budget analysis block.
const (
	BudgetOnTrack   = "on-track"
	BudgetNearLimit = "near-limit"
	BudgetOver      = "over-budget"
)

// Breakdown tiers by share of the collection total.
const (
	TierMajor    = "major"
	TierModerate = "moderate"
	TierMinor    = "minor"
)

// TieredItem represents one breakdown entry with its share of the total and
// its size tier.
type TieredItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Share  float64         `json:"share"`
	Tier   string          `json:"tier"`
}

// ReportData is everything the exporters render. It carries the exact
// summary structure the aggregation engine computes, so exported totals can
// never drift from the on-screen ones.
type ReportData struct {
	GeneratedAt          time.Time
	Summary              *finance.FinancialSummary
	Budget               *budget.BudgetStatus
	BudgetClassification string
	ExpenseTiers         []TieredItem
	IncomeTiers          []TieredItem
	Recommendations      []string
}

// HasBudget reports whether a budget exists for the current month.
func (r *ReportData) HasBudget() bool {
	return r.Budget != nil && !r.Budget.NoBudget
}

// BuildReportInput represents the input for assembling a report.
type BuildReportInput struct {
	Period string
	Search string
	Status string
}

// BuildReportUseCase assembles the data both exporters consume.
type BuildReportUseCase struct {
	summaryUC *finance.GetFinancialSummaryUseCase
	statusUC  *budget.GetBudgetStatusUseCase
	now       func() time.Time
}

// NewBuildReportUseCase creates a new BuildReportUseCase instance.
func NewBuildReportUseCase(
	summaryUC *finance.GetFinancialSummaryUseCase,
	statusUC *budget.GetBudgetStatusUseCase,
) *BuildReportUseCase {
	return &BuildReportUseCase{
		summaryUC: summaryUC,
		statusUC:  statusUC,
		now:       time.Now,
	}
}

// Execute computes the summary for the requested period, the budget status
// for the current month, and the derived report blocks.
func (uc *BuildReportUseCase) Execute(
	ctx context.Context,
	input BuildReportInput,
) (*ReportData, error) {
	summary, err := uc.summaryUC.Execute(ctx, finance.GetFinancialSummaryInput{
		Period: input.Period,
		Search: input.Search,
		Status: input.Status,
	})
	if err != nil {
		return nil, err
	}

	status, err := uc.statusUC.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget status: %w", err)
	}

	data := &ReportData{
		GeneratedAt:  uc.now(),
		Summary:      summary,
		Budget:       status,
		ExpenseTiers: tierItems(summary.ExpensesByCategory, summary.TotalExpenses),
		IncomeTiers:  tierItems(summary.IncomeBySource, summary.TotalIncome),
	}

	var usage *float64
	if data.HasBudget() {
		data.BudgetClassification = classifyUsage(status.Percentage)
		usage = &status.Percentage
	}
	data.Recommendations = Recommendations(summary.Profit, summary.ProfitMargin, usage)

	return data, nil
}

// classifyUsage maps a budget usage percentage onto a classification.
func classifyUsage(percentage float64) string {
	switch {
	case percentage > 100:
		return BudgetOver
	case percentage > 80:
		return BudgetNearLimit
	default:
		return BudgetOnTrack
	}
}

// tierItems attaches share-of-total and a size tier to each breakdown entry.
func tierItems(items []finance.BreakdownItem, total decimal.Decimal) []TieredItem {
	tiered := make([]TieredItem, 0, len(items))
	for _, item := range items {
		var share float64
		if total.IsPositive() {
			pct := item.Amount.Mul(decimal.NewFromInt(100)).Div(total)
			share, _ = pct.Round(2).Float64()
		}
		tiered = append(tiered, TieredItem{
			Name:   item.Name,
			Amount: item.Amount,
			Share:  share,
			Tier:   classifyShare(share),
		})
	}
	return tiered
}

// classifyShare maps a share percentage onto a tier.
func classifyShare(share float64) string {
	switch {
	case share >= 25:
		return TierMajor
	case share >= 10:
		return TierModerate
	default:
		return TierMinor
	}
}
