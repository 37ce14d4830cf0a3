// Package billing implements the calculation engine behind guest
// checkout, sales accounts and purchase accounts: charge aggregation,
// discount and tax application, and balance roll-ups. Everything here
// is a pure function of its inputs; persistence lives in the
// repositories and mutation in the services.
package billing

import "github.com/shopspring/decimal"

// Amounts are carried as integer cents end to end. Percentage math goes
// through shopspring/decimal so repeated discount/tax application never
// accumulates binary floating-point error, and results round back to a
// whole cent (half away from zero).

// Cents converts a decimal major-unit amount to integer cents, rounding
// to the nearest cent.
func Cents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FromCents converts integer cents to a decimal major-unit amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

// CentsFromFloat converts a major-unit float (as received at the API
// boundary) to integer cents.
func CentsFromFloat(amount float64) int64 {
	return Cents(decimal.NewFromFloat(amount))
}

// PercentOf returns pct% of the given cent amount, rounded to a cent.
func PercentOf(cents int64, pct decimal.Decimal) int64 {
	return decimal.NewFromInt(cents).Mul(pct).Div(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ClampNonNegative floors a cent amount at zero.
func ClampNonNegative(cents int64) int64 {
	if cents < 0 {
		return 0
	}
	return cents
}
