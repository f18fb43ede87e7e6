// Package budget contains the monthly budget tracking use cases.
package budget

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

type stubBudgetRepo struct {
	budget     *entity.MonthlyBudget
	categories []*entity.BudgetCategory
	exists     bool
	created    *entity.MonthlyBudget
	createdCat []*entity.BudgetCategory
	updated    *entity.MonthlyBudget
	deletedID  uuid.UUID
}

func (r *stubBudgetRepo) CreateWithCategories(_ context.Context, b *entity.MonthlyBudget, cats []*entity.BudgetCategory) error {
	r.created = b
	r.createdCat = cats
	return nil
}

func (r *stubBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MonthlyBudget, error) {
	if r.budget == nil || r.budget.ID != id {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeBudgetNotFound, "budget not found", domainerror.ErrBudgetNotFound)
	}
	return r.budget, nil
}

func (r *stubBudgetRepo) FindByMonthYear(_ context.Context, month, year int) (*entity.MonthlyBudget, error) {
	if r.budget == nil || r.budget.Month != month || r.budget.Year != year {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeBudgetNotFound, "budget not found", domainerror.ErrBudgetNotFound)
	}
	return r.budget, nil
}

func (r *stubBudgetRepo) ExistsByMonthYear(_ context.Context, _, _ int) (bool, error) {
	return r.exists, nil
}

func (r *stubBudgetRepo) FindCategories(_ context.Context, _ uuid.UUID) ([]*entity.BudgetCategory, error) {
	return r.categories, nil
}

func (r *stubBudgetRepo) Update(_ context.Context, b *entity.MonthlyBudget) error {
	r.updated = b
	return nil
}

func (r *stubBudgetRepo) DeleteWithCategories(_ context.Context, id uuid.UUID) error {
	r.deletedID = id
	return nil
}

type stubExpenseRepo struct {
	expenses  []*entity.Expense
	lastStart time.Time
	lastEnd   time.Time
}

func (r *stubExpenseRepo) CreateBatch(_ context.Context, _ []*entity.Expense) error { return nil }
func (r *stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) FindFromDate(_ context.Context, _ time.Time) ([]*entity.Expense, error) {
	return r.expenses, nil
}
func (r *stubExpenseRepo) FindInRange(_ context.Context, start, end time.Time) ([]*entity.Expense, error) {
	r.lastStart = start
	r.lastEnd = end
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

func monthExpense(amount int64) *entity.Expense {
	return entity.NewExpense("expense", decimal.NewFromInt(amount), entity.CategoryFeed, "",
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), entity.RecordStatusCleared)
}

func monthIncome(amount int64) *entity.Income {
	return entity.NewIncome("income", decimal.NewFromInt(amount), entity.SourceEggSales,
		time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC), entity.RecordStatusCleared)
}

func statusUseCase(budgetRepo *stubBudgetRepo, expenses *stubExpenseRepo, income *stubIncomeRepo, now time.Time) *GetBudgetStatusUseCase {
	uc := NewGetBudgetStatusUseCase(budgetRepo, expenses, income)
	uc.now = func() time.Time { return now }
	return uc
}

func TestGetBudgetStatus(t *testing.T) {
	now := time.Date(2025, time.June, 18, 10, 0, 0, 0, time.UTC)
	admin := uuid.New()

	t.Run("under budget", func(t *testing.T) {
		budgetRepo := &stubBudgetRepo{budget: entity.NewMonthlyBudget(6, 2025, decimal.NewFromInt(100000), "", admin)}
		expenses := &stubExpenseRepo{expenses: []*entity.Expense{monthExpense(60000)}}
		income := &stubIncomeRepo{income: []*entity.Income{monthIncome(90000)}}

		status, err := statusUseCase(budgetRepo, expenses, income, now).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !status.Remaining.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected remaining 40000, got %s", status.Remaining)
		}
		if status.Percentage != 60 {
			t.Errorf("expected percentage 60, got %v", status.Percentage)
		}
		if !status.Savings.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected savings 40000, got %s", status.Savings)
		}
		if !status.Overspent.IsZero() {
			t.Errorf("expected overspent 0, got %s", status.Overspent)
		}
		if !status.NetFlow.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("expected net flow 30000, got %s", status.NetFlow)
		}
		if status.BudgetEfficiency != 40 {
			t.Errorf("expected efficiency 40, got %v", status.BudgetEfficiency)
		}
		if !status.IsOnTrack {
			t.Error("expected on track at 60 percent usage")
		}
		if status.FlowStatus != FlowStatusPositive {
			t.Errorf("expected positive flow, got %s", status.FlowStatus)
		}
		if status.NoBudget {
			t.Error("expected NoBudget to be false")
		}
	})

	t.Run("over budget", func(t *testing.T) {
		budgetRepo := &stubBudgetRepo{budget: entity.NewMonthlyBudget(6, 2025, decimal.NewFromInt(100000), "", admin)}
		expenses := &stubExpenseRepo{expenses: []*entity.Expense{monthExpense(120000)}}
		income := &stubIncomeRepo{income: []*entity.Income{monthIncome(100000)}}

		status, err := statusUseCase(budgetRepo, expenses, income, now).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !status.Savings.IsZero() {
			t.Errorf("expected savings 0, got %s", status.Savings)
		}
		if !status.Overspent.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("expected overspent 20000, got %s", status.Overspent)
		}
		if status.Percentage != 120 {
			t.Errorf("expected percentage 120, got %v", status.Percentage)
		}
		if status.IsOnTrack {
			t.Error("expected not on track at 120 percent usage")
		}
		if status.FlowStatus != FlowStatusNegative {
			t.Errorf("expected negative flow, got %s", status.FlowStatus)
		}
	})

	t.Run("exactly 80 percent usage is still on track", func(t *testing.T) {
		budgetRepo := &stubBudgetRepo{budget: entity.NewMonthlyBudget(6, 2025, decimal.NewFromInt(100000), "", admin)}
		expenses := &stubExpenseRepo{expenses: []*entity.Expense{monthExpense(80000)}}

		status, err := statusUseCase(budgetRepo, expenses, &stubIncomeRepo{}, now).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.IsOnTrack {
			t.Error("expected on track at exactly 80 percent usage")
		}
	})

	t.Run("no budget for the month", func(t *testing.T) {
		expenses := &stubExpenseRepo{expenses: []*entity.Expense{monthExpense(5000)}}
		income := &stubIncomeRepo{income: []*entity.Income{monthIncome(5000)}}

		status, err := statusUseCase(&stubBudgetRepo{}, expenses, income, now).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !status.NoBudget {
			t.Error("expected NoBudget to be true")
		}
		if status.Percentage != 0 || status.BudgetEfficiency != 0 {
			t.Error("expected zero percentage and efficiency without a budget")
		}
		if !status.NetFlow.IsZero() || status.FlowStatus != FlowStatusNeutral {
			t.Errorf("expected neutral flow, got %s %s", status.NetFlow, status.FlowStatus)
		}
	})

	t.Run("December bounds roll over into January", func(t *testing.T) {
		december := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
		expenses := &stubExpenseRepo{}

		_, err := statusUseCase(&stubBudgetRepo{}, expenses, &stubIncomeRepo{}, december).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !expenses.lastStart.Equal(wantStart) || !expenses.lastEnd.Equal(wantEnd) {
			t.Errorf("expected range [%s, %s), got [%s, %s)", wantStart, wantEnd, expenses.lastStart, expenses.lastEnd)
		}
	})
}

func TestCreateBudget(t *testing.T) {
	admin := uuid.New()

	t.Run("creates budget with derived limits and default categories", func(t *testing.T) {
		repo := &stubBudgetRepo{}
		uc := NewCreateBudgetUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateBudgetInput{
			Month:        6,
			Year:         2025,
			BudgetAmount: decimal.NewFromInt(200000),
			CreatedBy:    admin,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Budget.ExpenseLimit.Equal(decimal.NewFromInt(160000)) {
			t.Errorf("expected expense limit 160000, got %s", out.Budget.ExpenseLimit)
		}
		if !out.Budget.IncomeTarget.Equal(decimal.NewFromInt(240000)) {
			t.Errorf("expected income target 240000, got %s", out.Budget.IncomeTarget)
		}
		if len(out.Categories) != 5 {
			t.Fatalf("expected 5 default categories, got %d", len(out.Categories))
		}

		total := decimal.Zero
		for _, cat := range out.Categories {
			total = total.Add(cat.AllocatedAmount)
		}
		if !total.Equal(out.Budget.BudgetAmount) {
			t.Errorf("expected allocations to sum to the budget amount exactly, got %s", total)
		}

		wantShares := map[string]int64{
			entity.CategoryFeed:       80000,
			entity.CategoryLabor:      50000,
			entity.CategoryMedication: 30000,
			entity.CategoryEquipment:  20000,
			entity.CategoryUtilities:  20000,
		}
		for _, cat := range out.Categories {
			want, ok := wantShares[cat.CategoryName]
			if !ok {
				t.Errorf("unexpected category %s", cat.CategoryName)
				continue
			}
			if !cat.AllocatedAmount.Equal(decimal.NewFromInt(want)) {
				t.Errorf("expected %s allocation %d, got %s", cat.CategoryName, want, cat.AllocatedAmount)
			}
		}

		if repo.created == nil || len(repo.createdCat) != 5 {
			t.Error("expected budget and categories to be persisted together")
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(&stubBudgetRepo{})
		_, err := uc.Execute(context.Background(), CreateBudgetInput{Month: 6, Year: 2025, BudgetAmount: decimal.Zero})
		if !errors.Is(err, domainerror.ErrInvalidBudgetAmount) {
			t.Errorf("expected ErrInvalidBudgetAmount, got %v", err)
		}
	})

	t.Run("rejects a duplicate month and year", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(&stubBudgetRepo{exists: true})
		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			Month: 6, Year: 2025, BudgetAmount: decimal.NewFromInt(1000),
		})
		if !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			t.Errorf("expected ErrBudgetAlreadyExists, got %v", err)
		}
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(&stubBudgetRepo{})
		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			Month: 13, Year: 2025, BudgetAmount: decimal.NewFromInt(1000),
		})
		if !errors.Is(err, domainerror.ErrInvalidBudgetPeriod) {
			t.Errorf("expected ErrInvalidBudgetPeriod, got %v", err)
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	admin := uuid.New()

	t.Run("recomputes limits from the new amount", func(t *testing.T) {
		existing := entity.NewMonthlyBudget(6, 2025, decimal.NewFromInt(100000), "initial", admin)
		repo := &stubBudgetRepo{budget: existing}
		uc := NewUpdateBudgetUseCase(repo)

		updated, err := uc.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:     existing.ID,
			BudgetAmount: decimal.NewFromInt(150000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !updated.ExpenseLimit.Equal(decimal.NewFromInt(120000)) {
			t.Errorf("expected expense limit 120000, got %s", updated.ExpenseLimit)
		}
		if !updated.IncomeTarget.Equal(decimal.NewFromInt(180000)) {
			t.Errorf("expected income target 180000, got %s", updated.IncomeTarget)
		}
		if updated.Notes != "initial" {
			t.Errorf("expected notes untouched, got %q", updated.Notes)
		}
		if repo.updated == nil {
			t.Error("expected the budget to be persisted")
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewUpdateBudgetUseCase(&stubBudgetRepo{})
		_, err := uc.Execute(context.Background(), UpdateBudgetInput{BudgetID: uuid.New(), BudgetAmount: decimal.NewFromInt(-1)})
		if !errors.Is(err, domainerror.ErrInvalidBudgetAmount) {
			t.Errorf("expected ErrInvalidBudgetAmount, got %v", err)
		}
	})
}

func TestDeleteBudget(t *testing.T) {
	admin := uuid.New()

	t.Run("deletes an existing budget", func(t *testing.T) {
		existing := entity.NewMonthlyBudget(6, 2025, decimal.NewFromInt(100000), "", admin)
		repo := &stubBudgetRepo{budget: existing}

		if err := NewDeleteBudgetUseCase(repo).Execute(context.Background(), existing.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deletedID != existing.ID {
			t.Error("expected the budget to be deleted")
		}
	})

	t.Run("unknown budget surfaces not found", func(t *testing.T) {
		err := NewDeleteBudgetUseCase(&stubBudgetRepo{}).Execute(context.Background(), uuid.New())
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}
