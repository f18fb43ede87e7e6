// Package valueobject contains small domain value types shared across layers.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NairaSymbol is the currency symbol used on screen.
const NairaSymbol = "₦"

// NairaCode is the literal substituted for the symbol in PDF output, where
// the built-in fonts have no glyph for the Naira sign.
const NairaCode = "NGN"

// FormatNaira renders an amount with the Naira symbol and thousands
// separators, e.g. ₦1,234,500.00.
func FormatNaira(amount decimal.Decimal) string {
	return NairaSymbol + groupDigits(amount)
}

// FormatNairaCode renders an amount like FormatNaira but with the literal
// NGN code in place of the symbol. The substitution is symbol-for-code only;
// the numeric part is identical.
func FormatNairaCode(amount decimal.Decimal) string {
	return NairaCode + groupDigits(amount)
}

// groupDigits renders the amount with two decimal places and a comma every
// three integer digits.
func groupDigits(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}

	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
