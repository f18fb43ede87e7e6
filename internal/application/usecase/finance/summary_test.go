package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

type stubExpenseRepo struct {
	expenses  []*entity.Expense
	err       error
	lastStart time.Time
}

func (r *stubExpenseRepo) CreateBatch(_ context.Context, _ []*entity.Expense) error { return nil }
func (r *stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) FindFromDate(_ context.Context, start time.Time) ([]*entity.Expense, error) {
	r.lastStart = start
	return r.expenses, r.err
}
func (r *stubExpenseRepo) FindInRange(_ context.Context, _, _ time.Time) ([]*entity.Expense, error) {
	return r.expenses, r.err
}
func (r *stubExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (r *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

type stubIncomeRepo struct {
	income []*entity.Income
	err    error
}

func (r *stubIncomeRepo) CreateBatch(_ context.Context, _ []*entity.Income) error { return nil }
func (r *stubIncomeRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Income, error) {
	return nil, nil
}
func (r *stubIncomeRepo) FindFromDate(_ context.Context, _ time.Time) ([]*entity.Income, error) {
	return r.income, r.err
}
func (r *stubIncomeRepo) FindInRange(_ context.Context, _, _ time.Time) ([]*entity.Income, error) {
	return r.income, r.err
}
func (r *stubIncomeRepo) Update(_ context.Context, _ *entity.Income) error { return nil }
func (r *stubIncomeRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

func expenseOn(day time.Time, amount int64, category string, status entity.RecordStatus) *entity.Expense {
	return entity.NewExpense("expense", decimal.NewFromInt(amount), category, "store", day, status)
}

func incomeOn(day time.Time, amount int64, source string, status entity.RecordStatus) *entity.Income {
	return entity.NewIncome("income", decimal.NewFromInt(amount), source, day, status)
}

func newSummaryUseCase(expenses *stubExpenseRepo, income *stubIncomeRepo, now time.Time) *GetFinancialSummaryUseCase {
	uc := NewGetFinancialSummaryUseCase(expenses, income, nil, 0)
	uc.now = func() time.Time { return now }
	return uc
}

func TestGetFinancialSummary(t *testing.T) {
	now := time.Date(2025, time.June, 18, 10, 0, 0, 0, time.UTC)

	t.Run("totals, profit and margin", func(t *testing.T) {
		expenses := &stubExpenseRepo{expenses: []*entity.Expense{
			expenseOn(date(2025, time.June, 2), 30000, entity.CategoryFeed, entity.RecordStatusCleared),
			expenseOn(date(2025, time.June, 10), 10000, entity.CategoryLabor, entity.RecordStatusPending),
		}}
		income := &stubIncomeRepo{income: []*entity.Income{
			incomeOn(date(2025, time.June, 5), 50000, entity.SourceEggSales, entity.RecordStatusCleared),
		}}

		uc := newSummaryUseCase(expenses, income, now)
		summary, err := uc.Execute(context.Background(), GetFinancialSummaryInput{Period: "month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !summary.TotalExpenses.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected total expenses 40000, got %s", summary.TotalExpenses)
		}
		if !summary.TotalIncome.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected total income 50000, got %s", summary.TotalIncome)
		}
		if !summary.Profit.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected profit 10000, got %s", summary.Profit)
		}
		if summary.ProfitMargin != 20 {
			t.Errorf("expected profit margin 20, got %v", summary.ProfitMargin)
		}
		if summary.PendingCount != 1 {
			t.Errorf("expected 1 pending record, got %d", summary.PendingCount)
		}
		if summary.TopExpenseCategory != entity.CategoryFeed {
			t.Errorf("expected top category %s, got %s", entity.CategoryFeed, summary.TopExpenseCategory)
		}
		if !expenses.lastStart.Equal(date(2025, time.June, 1)) {
			t.Errorf("expected fetch from 2025-06-01, got %s", expenses.lastStart)
		}
	})

	t.Run("empty record set yields all zeros", func(t *testing.T) {
		uc := newSummaryUseCase(&stubExpenseRepo{}, &stubIncomeRepo{}, now)
		summary, err := uc.Execute(context.Background(), GetFinancialSummaryInput{Period: "week"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !summary.TotalExpenses.IsZero() || !summary.TotalIncome.IsZero() || !summary.Profit.IsZero() {
			t.Error("expected zero totals for an empty record set")
		}
		if summary.ProfitMargin != 0 {
			t.Errorf("expected zero margin, got %v", summary.ProfitMargin)
		}
		if len(summary.ExpensesByCategory) != 0 || len(summary.IncomeBySource) != 0 {
			t.Error("expected no breakdown entries for an empty record set")
		}
		if summary.TopExpenseCategory != "" || summary.TopIncomeSource != "" {
			t.Error("expected no top category or source for an empty record set")
		}
	})

	t.Run("margin is zero when income is zero even with expenses", func(t *testing.T) {
		expenses := &stubExpenseRepo{expenses: []*entity.Expense{
			expenseOn(date(2025, time.June, 2), 5000, entity.CategoryFeed, entity.RecordStatusCleared),
		}}
		uc := newSummaryUseCase(expenses, &stubIncomeRepo{}, now)
		summary, err := uc.Execute(context.Background(), GetFinancialSummaryInput{Period: "month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ProfitMargin != 0 {
			t.Errorf("expected zero margin with zero income, got %v", summary.ProfitMargin)
		}
		if !summary.Profit.Equal(decimal.NewFromInt(-5000)) {
			t.Errorf("expected profit -5000, got %s", summary.Profit)
		}
	})

	t.Run("future-dated records are included", func(t *testing.T) {
		// The period rule has no upper bound. Rows dated after "now" still
		// count toward the totals when the store returns them.
		expenses := &stubExpenseRepo{expenses: []*entity.Expense{
			expenseOn(date(2025, time.June, 25), 7000, entity.CategoryFeed, entity.RecordStatusCleared),
		}}
		uc := newSummaryUseCase(expenses, &stubIncomeRepo{}, now)
		summary, err := uc.Execute(context.Background(), GetFinancialSummaryInput{Period: "month"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.TotalExpenses.Equal(decimal.NewFromInt(7000)) {
			t.Errorf("expected future-dated expense to count, got total %s", summary.TotalExpenses)
		}
	})

	t.Run("fetch failure surfaces as data unavailable", func(t *testing.T) {
		expenses := &stubExpenseRepo{err: errors.New("connection reset")}
		uc := newSummaryUseCase(expenses, &stubIncomeRepo{}, now)

		_, err := uc.Execute(context.Background(), GetFinancialSummaryInput{Period: "month"})
		if err == nil {
			t.Fatal("expected an error when the store read fails")
		}
		if !errors.Is(err, domainerror.ErrDataUnavailable) {
			t.Errorf("expected ErrDataUnavailable, got %v", err)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := newSummaryUseCase(&stubExpenseRepo{}, &stubIncomeRepo{}, now)
		_, err := uc.Execute(context.Background(), GetFinancialSummaryInput{Period: "month", Status: "archived"})
		if !errors.Is(err, domainerror.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestSummarizeBreakdownOrdering(t *testing.T) {
	start := date(2025, time.June, 1)

	t.Run("breakdowns sort by amount descending", func(t *testing.T) {
		expenses := []*entity.Expense{
			expenseOn(date(2025, time.June, 2), 1000, entity.CategoryLabor, entity.RecordStatusCleared),
			expenseOn(date(2025, time.June, 3), 9000, entity.CategoryFeed, entity.RecordStatusCleared),
			expenseOn(date(2025, time.June, 4), 4000, entity.CategoryFeed, entity.RecordStatusCleared),
			expenseOn(date(2025, time.June, 5), 2000, entity.CategoryUtilities, entity.RecordStatusCleared),
		}
		summary := Summarize(entity.PeriodMonth, start, expenses, nil, Filter{})

		got := make([]string, 0, len(summary.ExpensesByCategory))
		for _, item := range summary.ExpensesByCategory {
			got = append(got, item.Name)
		}
		want := []string{entity.CategoryFeed, entity.CategoryUtilities, entity.CategoryLabor}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
		if !summary.ExpensesByCategory[0].Amount.Equal(decimal.NewFromInt(13000)) {
			t.Errorf("expected Feed sum 13000, got %s", summary.ExpensesByCategory[0].Amount)
		}
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		income := []*entity.Income{
			incomeOn(date(2025, time.June, 2), 5000, entity.SourceChickenSales, entity.RecordStatusCleared),
			incomeOn(date(2025, time.June, 3), 5000, entity.SourceEggSales, entity.RecordStatusCleared),
		}
		summary := Summarize(entity.PeriodMonth, start, nil, income, Filter{})

		if summary.TopIncomeSource != entity.SourceChickenSales {
			t.Errorf("expected first-encountered source to win the tie, got %s", summary.TopIncomeSource)
		}
	})
}
