package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "zero", amount: "0", expected: "₦0.00"},
		{name: "hundreds", amount: "850", expected: "₦850.00"},
		{name: "thousands", amount: "50000", expected: "₦50,000.00"},
		{name: "millions", amount: "1234500.5", expected: "₦1,234,500.50"},
		{name: "exact three digits", amount: "100", expected: "₦100.00"},
		{name: "negative", amount: "-20000", expected: "₦-20,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			if got := FormatNaira(amount); got != tt.expected {
				t.Errorf("FormatNaira(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatNairaCodeMatchesSymbolForm(t *testing.T) {
	// The PDF form must differ from the screen form only in the currency
	// marker, never in the digits.
	amounts := []string{"0", "999", "85000", "120000.25", "-15000"}
	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		symbol := FormatNaira(amount)
		code := FormatNairaCode(amount)

		if got, want := code, NairaCode+symbol[len(NairaSymbol):]; got != want {
			t.Errorf("FormatNairaCode(%s) = %q, want %q", a, got, want)
		}
	}
}
