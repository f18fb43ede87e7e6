package report

import (
	"context"
	"log/slog"

	"github.com/blessing-poultries/backend/internal/application/adapter"
)

// GetAdviceUseCase handles generating financial commentary for a report.
// When no advisor is configured, or the advisor fails, it falls back to the
// deterministic recommendation table.
type GetAdviceUseCase struct {
	buildUC *BuildReportUseCase
	advisor adapter.AdviceService
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance. The advisor
// may be nil.
func NewGetAdviceUseCase(buildUC *BuildReportUseCase, advisor adapter.AdviceService) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		buildUC: buildUC,
		advisor: advisor,
	}
}

// Execute returns advice paragraphs for the requested period. The
// deterministic recommendations are always computed; the advisor only ever
// adds to them.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input BuildReportInput) ([]string, error) {
	data, err := uc.buildUC.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	advice := data.Recommendations

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return advice, nil
	}

	request := &adapter.AdviceRequest{
		Period:             string(data.Summary.Period),
		TotalExpenses:      data.Summary.TotalExpenses.StringFixed(2),
		TotalIncome:        data.Summary.TotalIncome.StringFixed(2),
		Profit:             data.Summary.Profit.StringFixed(2),
		ProfitMargin:       data.Summary.ProfitMargin,
		TopExpenseCategory: data.Summary.TopExpenseCategory,
		TopIncomeSource:    data.Summary.TopIncomeSource,
	}
	if data.HasBudget() {
		usage := data.Budget.Percentage
		request.BudgetUsage = &usage
	}

	extra, err := uc.advisor.Advise(ctx, request)
	if err != nil {
		slog.Warn("advisor unavailable, using deterministic recommendations", "error", err)
		return advice, nil
	}

	return append(advice, extra...), nil
}
