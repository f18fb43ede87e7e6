package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blessing-poultries/backend/internal/domain/entity"
)

func sampleExpense() *entity.Expense {
	return entity.NewExpense(
		"Layer mash 50kg",
		decimal.NewFromInt(25000),
		entity.CategoryFeed,
		"Agro Supplies Ltd",
		date(2025, time.June, 12),
		entity.RecordStatusCleared,
	)
}

func sampleIncome() *entity.Income {
	return entity.NewIncome(
		"Crate sales to market",
		decimal.NewFromInt(48000),
		entity.SourceEggSales,
		date(2025, time.June, 14),
		entity.RecordStatusPending,
	)
}

func TestFilterMatchesExpense(t *testing.T) {
	expense := sampleExpense()

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter matches everything", Filter{}, true},
		{"status all matches everything", Filter{Status: StatusAll}, true},
		{"matching status", Filter{Status: "cleared"}, true},
		{"non-matching status", Filter{Status: "flagged"}, false},
		{"description substring", Filter{Search: "mash"}, true},
		{"description is case-insensitive", Filter{Search: "LAYER"}, true},
		{"category substring", Filter{Search: "feed"}, true},
		{"store name substring", Filter{Search: "agro"}, true},
		{"amount substring", Filter{Search: "25000"}, true},
		{"date rendered as dd/mm/yyyy", Filter{Search: "12/06/2025"}, true},
		{"no field matches", Filter{Search: "vaccine"}, false},
		{"both predicates must hold", Filter{Search: "mash", Status: "pending"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchesExpense(expense); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterMatchesIncome(t *testing.T) {
	income := sampleIncome()

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"source substring", Filter{Search: "egg"}, true},
		{"status match", Filter{Status: "pending"}, true},
		{"status mismatch", Filter{Status: "cleared"}, false},
		{"amount substring", Filter{Search: "4800"}, true},
		{"no match", Filter{Search: "chick"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchesIncome(income); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// Filtering is a pure predicate: applying it twice yields the same set as
// applying it once.
func TestFilterIdempotence(t *testing.T) {
	expenses := []*entity.Expense{
		sampleExpense(),
		entity.NewExpense("Vaccines", decimal.NewFromInt(8000), entity.CategoryMedication, "VetCare", date(2025, time.June, 13), entity.RecordStatusFlagged),
	}
	filter := Filter{Search: "e", Status: StatusAll}

	once := make([]*entity.Expense, 0)
	for _, e := range expenses {
		if filter.MatchesExpense(e) {
			once = append(once, e)
		}
	}

	twice := make([]*entity.Expense, 0)
	for _, e := range once {
		if filter.MatchesExpense(e) {
			twice = append(twice, e)
		}
	}

	if len(once) != len(twice) {
		t.Fatalf("expected %d records after refiltering, got %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("record %d changed identity after refiltering", i)
		}
	}
}
