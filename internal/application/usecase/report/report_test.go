// Package report contains the report building and advisory use cases.
package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/application/usecase/budget"
	"github.com/blessing-poultries/backend/internal/application/usecase/finance"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

type stubExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *stubExpenseRepo) CreateBatch(_ context.Context, _ []*entity.Expense) error { return nil }
func (r *stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) FindFromDate(_ context.Context, _ time.Time) ([]*entity.Expense, error) {
	return r.expenses, nil
}
func (r *stubExpenseRepo) FindInRange(_ context.Context, _, _ time.Time) ([]*entity.Expense, error) {
	return r.expenses, nil
}
func (r *stubExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (r *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

type stubIncomeRepo struct {
	income []*entity.Income
}

func (r *stubIncomeRepo) CreateBatch(_ context.Context, _ []*entity.Income) error { return nil }
func (r *stubIncomeRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Income, error) {
	return nil, nil
}
func (r *stubIncomeRepo) FindFromDate(_ context.Context, _ time.Time) ([]*entity.Income, error) {
	return r.income, nil
}
func (r *stubIncomeRepo) FindInRange(_ context.Context, _, _ time.Time) ([]*entity.Income, error) {
	return r.income, nil
}
func (r *stubIncomeRepo) Update(_ context.Context, _ *entity.Income) error { return nil }
func (r *stubIncomeRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

type stubBudgetRepo struct {
	budget *entity.MonthlyBudget
}

func (r *stubBudgetRepo) CreateWithCategories(_ context.Context, _ *entity.MonthlyBudget, _ []*entity.BudgetCategory) error {
	return nil
}

func (r *stubBudgetRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.MonthlyBudget, error) {
	return r.budget, nil
}

func (r *stubBudgetRepo) FindByMonthYear(_ context.Context, month, year int) (*entity.MonthlyBudget, error) {
	if r.budget == nil || r.budget.Month != month || r.budget.Year != year {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeBudgetNotFound, "budget not found", domainerror.ErrBudgetNotFound)
	}
	return r.budget, nil
}

func (r *stubBudgetRepo) ExistsByMonthYear(_ context.Context, _, _ int) (bool, error) {
	return r.budget != nil, nil
}

func (r *stubBudgetRepo) FindCategories(_ context.Context, _ uuid.UUID) ([]*entity.BudgetCategory, error) {
	return nil, nil
}

func (r *stubBudgetRepo) Update(_ context.Context, _ *entity.MonthlyBudget) error { return nil }
func (r *stubBudgetRepo) DeleteWithCategories(_ context.Context, _ uuid.UUID) error {
	return nil
}

func usage(v float64) *float64 { return &v }

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		profit      decimal.Decimal
		margin      float64
		budgetUsage *float64
		wantCount   int
		wantFirst   string
	}{
		{
			name:      "loss triggers urgent cost reduction",
			profit:    decimal.NewFromInt(-5000),
			margin:    0,
			wantCount: 3,
			wantFirst: "Urgent",
		},
		{
			name:      "thin margin triggers efficiency advice",
			profit:    decimal.NewFromInt(1000),
			margin:    5,
			wantCount: 3,
			wantFirst: "Focus on operational efficiency",
		},
		{
			name:      "strong margin triggers expansion advice",
			profit:    decimal.NewFromInt(50000),
			margin:    30,
			wantCount: 3,
			wantFirst: "Consider expanding",
		},
		{
			name:      "steady margin triggers maintain advice",
			profit:    decimal.NewFromInt(10000),
			margin:    15,
			wantCount: 3,
			wantFirst: "Maintain",
		},
		{
			name:        "over budget appends a warning",
			profit:      decimal.NewFromInt(10000),
			margin:      15,
			budgetUsage: usage(112.5),
			wantCount:   4,
			wantFirst:   "Maintain",
		},
		{
			name:        "low usage appends an investment note",
			profit:      decimal.NewFromInt(10000),
			margin:      15,
			budgetUsage: usage(55),
			wantCount:   4,
			wantFirst:   "Maintain",
		},
		{
			name:        "usage between 70 and 100 appends nothing",
			profit:      decimal.NewFromInt(10000),
			margin:      15,
			budgetUsage: usage(85),
			wantCount:   3,
			wantFirst:   "Maintain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommendations(tt.profit, tt.margin, tt.budgetUsage)
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d recommendations, got %d: %v", tt.wantCount, len(got), got)
			}
			if !strings.HasPrefix(got[0], tt.wantFirst) {
				t.Errorf("expected first recommendation to start with %q, got %q", tt.wantFirst, got[0])
			}
		})
	}

	t.Run("over-budget warning names the overage", func(t *testing.T) {
		got := Recommendations(decimal.NewFromInt(10000), 15, usage(112.5))
		last := got[len(got)-1]
		if !strings.Contains(last, "12.5%") {
			t.Errorf("expected the warning to name the 12.5%% overage, got %q", last)
		}
	})

	t.Run("loss wins over margin rules", func(t *testing.T) {
		// A negative profit with zero income means a zero margin; the loss
		// row must match first.
		got := Recommendations(decimal.NewFromInt(-100), 0, nil)
		if !strings.HasPrefix(got[0], "Urgent") {
			t.Errorf("expected the loss advice set, got %q", got[0])
		}
	})
}

func TestClassifyUsage(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{50, BudgetOnTrack},
		{80, BudgetOnTrack},
		{80.1, BudgetNearLimit},
		{100, BudgetNearLimit},
		{100.1, BudgetOver},
		{150, BudgetOver},
	}

	for _, tt := range tests {
		if got := classifyUsage(tt.percentage); got != tt.want {
			t.Errorf("classifyUsage(%v): expected %s, got %s", tt.percentage, tt.want, got)
		}
	}
}

func TestTierItems(t *testing.T) {
	items := []finance.BreakdownItem{
		{Name: entity.CategoryFeed, Amount: decimal.NewFromInt(50)},
		{Name: entity.CategoryLabor, Amount: decimal.NewFromInt(30)},
		{Name: entity.CategoryMedication, Amount: decimal.NewFromInt(15)},
		{Name: entity.CategoryUtilities, Amount: decimal.NewFromInt(5)},
	}
	tiered := tierItems(items, decimal.NewFromInt(100))

	wantTiers := []string{TierMajor, TierMajor, TierModerate, TierMinor}
	for i, want := range wantTiers {
		if tiered[i].Tier != want {
			t.Errorf("item %s: expected tier %s, got %s", tiered[i].Name, want, tiered[i].Tier)
		}
	}
	if tiered[0].Share != 50 {
		t.Errorf("expected share 50, got %v", tiered[0].Share)
	}

	t.Run("zero total yields minor tiers", func(t *testing.T) {
		tiered := tierItems(items, decimal.Zero)
		for _, item := range tiered {
			if item.Tier != TierMinor || item.Share != 0 {
				t.Errorf("expected zero share and minor tier, got %v %s", item.Share, item.Tier)
			}
		}
	})
}

type fetchingStubs struct {
	expenses *stubExpenseRepo
	income   *stubIncomeRepo
	budgets  *stubBudgetRepo
}

func newFetchingStubs() *fetchingStubs {
	return &fetchingStubs{
		expenses: &stubExpenseRepo{},
		income:   &stubIncomeRepo{},
		budgets:  &stubBudgetRepo{},
	}
}

func (s *fetchingStubs) buildUseCase(now time.Time) *BuildReportUseCase {
	summaryUC := finance.NewGetFinancialSummaryUseCase(s.expenses, s.income, nil, 0)
	statusUC := budget.NewGetBudgetStatusUseCase(s.budgets, s.expenses, s.income)
	uc := NewBuildReportUseCase(summaryUC, statusUC)
	uc.now = func() time.Time { return now }
	return uc
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2025, time.June, 18, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	t.Run("report carries the engine's exact summary", func(t *testing.T) {
		stubs := newFetchingStubs()
		stubs.expenses.expenses = []*entity.Expense{
			entity.NewExpense("feed", decimal.NewFromInt(40000), entity.CategoryFeed, "", day, entity.RecordStatusCleared),
		}
		stubs.income.income = []*entity.Income{
			entity.NewIncome("eggs", decimal.NewFromInt(100000), entity.SourceEggSales, day, entity.RecordStatusCleared),
		}

		data, err := stubs.buildUseCase(now).Execute(context.Background(), BuildReportInput{Period: "month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := finance.Summarize(entity.PeriodMonth, finance.PeriodStart(now, entity.PeriodMonth),
			stubs.expenses.expenses, stubs.income.income, finance.Filter{})
		if !data.Summary.TotalExpenses.Equal(want.TotalExpenses) ||
			!data.Summary.TotalIncome.Equal(want.TotalIncome) ||
			!data.Summary.Profit.Equal(want.Profit) ||
			data.Summary.ProfitMargin != want.ProfitMargin {
			t.Error("expected the report summary to match the engine's computation exactly")
		}
		if data.HasBudget() {
			t.Error("expected no budget block without a monthly budget")
		}
		if data.BudgetClassification != "" {
			t.Errorf("expected no classification without a budget, got %s", data.BudgetClassification)
		}
		if len(data.Recommendations) == 0 {
			t.Error("expected recommendations to be present")
		}
	})

	t.Run("budget block present when a budget exists", func(t *testing.T) {
		stubs := newFetchingStubs()
		stubs.budgets.budget = entity.NewMonthlyBudget(6, 2025, decimal.NewFromInt(50000), "", uuid.New())
		stubs.expenses.expenses = []*entity.Expense{
			entity.NewExpense("feed", decimal.NewFromInt(60000), entity.CategoryFeed, "", day, entity.RecordStatusCleared),
		}

		data, err := stubs.buildUseCase(now).Execute(context.Background(), BuildReportInput{Period: "month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !data.HasBudget() {
			t.Fatal("expected a budget block")
		}
		if data.BudgetClassification != BudgetOver {
			t.Errorf("expected over-budget classification at 120 percent, got %s", data.BudgetClassification)
		}

		last := data.Recommendations[len(data.Recommendations)-1]
		if !strings.Contains(last, "over the monthly budget") {
			t.Errorf("expected an over-budget warning, got %q", last)
		}
	})
}
