package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// CentPlaces is the precision every amount is held at.
const CentPlaces = 2

// AmountFromFloat converts a decoded number into an exact amount rounded to
// cents. NaN and infinities are rejected for field.
func AmountFromFloat(field string, v float64) (decimal.Decimal, error) {
	if !IsFinite(v) {
		return decimal.Zero, Invalid(field, "must be a finite number, got %v", v)
	}
	return decimal.NewFromFloat(v).Round(CentPlaces), nil
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatAmount renders a money amount. Whole amounts print without a
// fractional part ("1000"), anything else with exactly two places
// ("2000.30").
func FormatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(CentPlaces)
}

// FormatMoney renders an amount as "$<amount> <currency>".
func FormatMoney(d decimal.Decimal, currency string) string {
	return "$" + FormatAmount(d) + " " + currency
}
