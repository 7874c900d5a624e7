package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display currency for all amounts. Bills are single-currency (Pakistani Rupee),
// shown with no fractional digits and thousands grouping, e.g. "Rs 12,390".
const Symbol = "Rs"

var printer = message.NewPrinter(language.MustParse("en-PK"))

// Format renders an amount as a display string in the fixed currency.
// Rounding to whole rupees happens here and only here; callers keep
// full float64 precision for anything stored or sent over the wire.
func Format(amount float64) string {
	return printer.Sprintf("%s %v", Symbol, number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// Round returns the amount rounded to whole currency units.
// Display-only helper; never applied to persisted totals.
func Round(amount float64) float64 {
	return math.Round(amount)
}
