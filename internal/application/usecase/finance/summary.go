package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// GetFinancialSummaryInput represents the input for computing a financial summary.
type GetFinancialSummaryInput struct {
	Period string
	Search string
	Status string
}

// BreakdownItem represents one name/amount pair in a breakdown, ordered by
// amount descending.
type BreakdownItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// FinancialSummary represents the aggregate view over the matching records
// for a period. The report exporter consumes this same structure, so the
// exported totals can never drift from the on-screen ones.
type FinancialSummary struct {
	Period             entity.Period     `json:"period"`
	StartDate          time.Time         `json:"start_date"`
	TotalExpenses      decimal.Decimal   `json:"total_expenses"`
	TotalIncome        decimal.Decimal   `json:"total_income"`
	Profit             decimal.Decimal   `json:"profit"`
	ProfitMargin       float64           `json:"profit_margin"`
	ExpensesByCategory []BreakdownItem   `json:"expenses_by_category"`
	IncomeBySource     []BreakdownItem   `json:"income_by_source"`
	TopExpenseCategory string            `json:"top_expense_category"`
	TopIncomeSource    string            `json:"top_income_source"`
	ExpenseCount       int               `json:"expense_count"`
	IncomeCount        int               `json:"income_count"`
	PendingCount       int               `json:"pending_count"`
	FlaggedCount       int               `json:"flagged_count"`
	Expenses           []*entity.Expense `json:"expenses"`
	Income             []*entity.Income  `json:"income"`
}

// GetFinancialSummaryUseCase handles computing the financial summary for a period.
type GetFinancialSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
	cache       adapter.SummaryCache
	cacheTTL    time.Duration
	now         func() time.Time
}

// NewGetFinancialSummaryUseCase creates a new GetFinancialSummaryUseCase
// instance. The cache may be nil, in which case every call recomputes.
func NewGetFinancialSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	cache adapter.SummaryCache,
	cacheTTL time.Duration,
) *GetFinancialSummaryUseCase {
	return &GetFinancialSummaryUseCase{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		now:         time.Now,
	}
}

// Execute computes the financial summary for the requested period and filters.
func (uc *GetFinancialSummaryUseCase) Execute(
	ctx context.Context,
	input GetFinancialSummaryInput,
) (*FinancialSummary, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	cacheKey := SummaryCacheKey(input.Period, input.Search, input.Status)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	period := normalizePeriod(input.Period)
	start := PeriodStart(uc.now(), period)

	expenses, err := uc.expenseRepo.FindFromDate(ctx, start)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeDataUnavailable,
			"failed to fetch expense records",
			fmt.Errorf("%w: %w", domainerror.ErrDataUnavailable, err),
		)
	}

	income, err := uc.incomeRepo.FindFromDate(ctx, start)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeDataUnavailable,
			"failed to fetch income records",
			fmt.Errorf("%w: %w", domainerror.ErrDataUnavailable, err),
		)
	}

	filter := Filter{Search: input.Search, Status: input.Status}
	summary := Summarize(period, start, expenses, income, filter)

	uc.toCache(ctx, cacheKey, summary)

	return summary, nil
}

// validateInput validates the status filter. Unknown period values are not
// rejected; they fall back to the month rule.
func (uc *GetFinancialSummaryUseCase) validateInput(input GetFinancialSummaryInput) error {
	if input.Status == "" || input.Status == StatusAll {
		return nil
	}
	if !entity.IsValidRecordStatus(entity.RecordStatus(input.Status)) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidStatus,
			"status must be all, cleared, pending or flagged",
			domainerror.ErrInvalidStatus,
		)
	}
	return nil
}

// Summarize computes the aggregate view over already-fetched record sets.
// It is pure: the same inputs always produce the same summary.
func Summarize(
	period entity.Period,
	start time.Time,
	expenses []*entity.Expense,
	income []*entity.Income,
	filter Filter,
) *FinancialSummary {
	summary := &FinancialSummary{
		Period:        period,
		StartDate:     start,
		TotalExpenses: decimal.Zero,
		TotalIncome:   decimal.Zero,
		Expenses:      make([]*entity.Expense, 0, len(expenses)),
		Income:        make([]*entity.Income, 0, len(income)),
	}

	expenseSums := newBreakdown()
	incomeSums := newBreakdown()

	for _, expense := range expenses {
		if !filter.MatchesExpense(expense) {
			continue
		}
		summary.Expenses = append(summary.Expenses, expense)
		summary.TotalExpenses = summary.TotalExpenses.Add(expense.Amount)
		expenseSums.add(expense.Category, expense.Amount)
		countStatus(summary, expense.Status)
	}

	for _, record := range income {
		if !filter.MatchesIncome(record) {
			continue
		}
		summary.Income = append(summary.Income, record)
		summary.TotalIncome = summary.TotalIncome.Add(record.Amount)
		incomeSums.add(record.Source, record.Amount)
		countStatus(summary, record.Status)
	}

	summary.ExpenseCount = len(summary.Expenses)
	summary.IncomeCount = len(summary.Income)
	summary.Profit = summary.TotalIncome.Sub(summary.TotalExpenses)

	if summary.TotalIncome.IsPositive() {
		margin := summary.Profit.Mul(decimal.NewFromInt(100)).Div(summary.TotalIncome)
		summary.ProfitMargin, _ = margin.Round(2).Float64()
	}

	summary.ExpensesByCategory = expenseSums.sorted()
	summary.IncomeBySource = incomeSums.sorted()

	if len(summary.ExpensesByCategory) > 0 {
		summary.TopExpenseCategory = summary.ExpensesByCategory[0].Name
	}
	if len(summary.IncomeBySource) > 0 {
		summary.TopIncomeSource = summary.IncomeBySource[0].Name
	}

	return summary
}

// SummaryCacheKey builds the cache key for a summary query.
func SummaryCacheKey(period, search, status string) string {
	return fmt.Sprintf("summary:%s:%s:%s", period, search, status)
}

// normalizePeriod maps a raw selector onto a known Period, falling back to
// month for anything unrecognized.
func normalizePeriod(raw string) entity.Period {
	switch entity.Period(raw) {
	case entity.PeriodWeek, entity.PeriodMonth, entity.PeriodYear:
		return entity.Period(raw)
	default:
		return entity.PeriodMonth
	}
}

func countStatus(summary *FinancialSummary, status entity.RecordStatus) {
	switch status {
	case entity.RecordStatusPending:
		summary.PendingCount++
	case entity.RecordStatusFlagged:
		summary.FlaggedCount++
	}
}

// breakdown accumulates per-name sums while remembering first-encountered
// order, so ties keep insertion order after the stable descending sort.
type breakdown struct {
	order []string
	sums  map[string]decimal.Decimal
}

func newBreakdown() *breakdown {
	return &breakdown{sums: make(map[string]decimal.Decimal)}
}

func (b *breakdown) add(name string, amount decimal.Decimal) {
	if _, ok := b.sums[name]; !ok {
		b.order = append(b.order, name)
	}
	b.sums[name] = b.sums[name].Add(amount)
}

func (b *breakdown) sorted() []BreakdownItem {
	items := make([]BreakdownItem, 0, len(b.order))
	for _, name := range b.order {
		items = append(items, BreakdownItem{Name: name, Amount: b.sums[name]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})
	return items
}

// fromCache returns a cached summary, or nil on a miss or any cache failure.
func (uc *GetFinancialSummaryUseCase) fromCache(ctx context.Context, key string) *FinancialSummary {
	if uc.cache == nil {
		return nil
	}

	payload, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("summary cache read failed", "key", key, "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}

	var summary FinancialSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		slog.Warn("summary cache payload corrupt", "key", key, "error", err)
		return nil
	}
	return &summary
}

// toCache stores a computed summary. Failures are logged and ignored.
func (uc *GetFinancialSummaryUseCase) toCache(ctx context.Context, key string, summary *FinancialSummary) {
	if uc.cache == nil {
		return
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("summary cache marshal failed", "key", key, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
		slog.Warn("summary cache write failed", "key", key, "error", err)
	}
}
