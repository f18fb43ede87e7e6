// Package expense contains the expense record use cases.
package expense

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
	stored  map[uuid.UUID]*entity.Expense
	batches [][]*entity.Expense
	deleted []uuid.UUID
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{stored: make(map[uuid.UUID]*entity.Expense)}
}

func (r *stubExpenseRepo) CreateBatch(_ context.Context, expenses []*entity.Expense) error {
	r.batches = append(r.batches, expenses)
	for _, e := range expenses {
		r.stored[e.ID] = e
	}
	return nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.stored[id]
	if !ok {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordNotFound, "expense not found", domainerror.ErrRecordNotFound)
	}
	return expense, nil
}

func (r *stubExpenseRepo) FindFromDate(_ context.Context, _ time.Time) ([]*entity.Expense, error) {
	out := make([]*entity.Expense, 0, len(r.stored))
	for _, e := range r.stored {
		out = append(out, e)
	}
	return out, nil
}

func (r *stubExpenseRepo) FindInRange(_ context.Context, _, _ time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	r.stored[expense.ID] = expense
	return nil
}

func (r *stubExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.stored, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubCache struct {
	invalidations int
}

func (c *stubCache) Get(_ context.Context, _ string) ([]byte, error) { return nil, nil }
func (c *stubCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
func (c *stubCache) InvalidateAll(_ context.Context) error {
	c.invalidations++
	return nil
}

func validRow() ExpenseRow {
	return ExpenseRow{
		Description: "Layer mash 50kg",
		Amount:      decimal.NewFromInt(25000),
		Category:    entity.CategoryFeed,
		StoreName:   "Agro Supplies Ltd",
		Date:        time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Status:      "cleared",
	}
}

func TestCreateExpenses(t *testing.T) {
	t.Run("creates a batch and invalidates summaries", func(t *testing.T) {
		repo := newStubExpenseRepo()
		cache := &stubCache{}
		uc := NewCreateExpensesUseCase(repo, cache)

		second := validRow()
		second.Description = "Transport to market"
		second.Category = entity.CategoryTransportation

		created, err := uc.Execute(context.Background(), CreateExpensesInput{Rows: []ExpenseRow{validRow(), second}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 2 {
			t.Fatalf("expected 2 created records, got %d", len(created))
		}
		if len(repo.batches) != 1 {
			t.Errorf("expected a single batch insert, got %d", len(repo.batches))
		}
		if cache.invalidations != 1 {
			t.Errorf("expected one cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		uc := NewCreateExpensesUseCase(newStubExpenseRepo(), nil)
		_, err := uc.Execute(context.Background(), CreateExpensesInput{})
		if !errors.Is(err, domainerror.ErrEmptyBatch) {
			t.Errorf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("one invalid row rejects the whole batch", func(t *testing.T) {
		repo := newStubExpenseRepo()
		uc := NewCreateExpensesUseCase(repo, nil)

		bad := validRow()
		bad.Description = ""

		_, err := uc.Execute(context.Background(), CreateExpensesInput{Rows: []ExpenseRow{validRow(), bad}})
		if !errors.Is(err, domainerror.ErrEmptyDescription) {
			t.Errorf("expected ErrEmptyDescription, got %v", err)
		}
		if len(repo.batches) != 0 {
			t.Error("expected no insert when validation fails")
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		uc := NewCreateExpensesUseCase(newStubExpenseRepo(), nil)
		bad := validRow()
		bad.Amount = decimal.NewFromInt(-100)

		_, err := uc.Execute(context.Background(), CreateExpensesInput{Rows: []ExpenseRow{bad}})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("missing date is rejected", func(t *testing.T) {
		uc := NewCreateExpensesUseCase(newStubExpenseRepo(), nil)
		bad := validRow()
		bad.Date = time.Time{}

		_, err := uc.Execute(context.Background(), CreateExpensesInput{Rows: []ExpenseRow{bad}})
		if !errors.Is(err, domainerror.ErrMissingDate) {
			t.Errorf("expected ErrMissingDate, got %v", err)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := NewCreateExpensesUseCase(newStubExpenseRepo(), nil)
		bad := validRow()
		bad.Status = "archived"

		_, err := uc.Execute(context.Background(), CreateExpensesInput{Rows: []ExpenseRow{bad}})
		if !errors.Is(err, domainerror.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("applies a partial edit", func(t *testing.T) {
		repo := newStubExpenseRepo()
		cache := &stubCache{}
		created, err := NewCreateExpensesUseCase(repo, nil).Execute(
			context.Background(), CreateExpensesInput{Rows: []ExpenseRow{validRow()}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newAmount := decimal.NewFromInt(30000)
		newStatus := "pending"
		updated, err := NewUpdateExpenseUseCase(repo, cache).Execute(context.Background(), UpdateExpenseInput{
			ID:     created[0].ID,
			Amount: &newAmount,
			Status: &newStatus,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !updated.Amount.Equal(newAmount) {
			t.Errorf("expected amount 30000, got %s", updated.Amount)
		}
		if updated.Status != entity.RecordStatusPending {
			t.Errorf("expected status pending, got %s", updated.Status)
		}
		if updated.Description != "Layer mash 50kg" {
			t.Errorf("expected description untouched, got %q", updated.Description)
		}
		if cache.invalidations != 1 {
			t.Errorf("expected one cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("unknown id surfaces not found", func(t *testing.T) {
		uc := NewUpdateExpenseUseCase(newStubExpenseRepo(), nil)
		_, err := uc.Execute(context.Background(), UpdateExpenseInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("deletes and invalidates summaries", func(t *testing.T) {
		repo := newStubExpenseRepo()
		cache := &stubCache{}
		created, err := NewCreateExpensesUseCase(repo, nil).Execute(
			context.Background(), CreateExpensesInput{Rows: []ExpenseRow{validRow()}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := NewDeleteExpenseUseCase(repo, cache).Execute(context.Background(), created[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 {
			t.Error("expected the record to be deleted")
		}
		if cache.invalidations != 1 {
			t.Errorf("expected one cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("unknown id surfaces not found", func(t *testing.T) {
		err := NewDeleteExpenseUseCase(newStubExpenseRepo(), nil).Execute(context.Background(), uuid.New())
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}
