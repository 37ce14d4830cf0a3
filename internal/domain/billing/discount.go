package billing

import (
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Discount is supplied per computation at checkout or sale time; it is
// not a standing record. Percentage amounts are validated to [0,100] at
// the request edge before they reach this package.
type Discount struct {
	Type        enum.DiscountType
	Amount      decimal.Decimal // Flat: major units. Percentage: 0-100.
	Description string
}

// NoDiscount is the zero discount applied when a caller supplies none.
var NoDiscount = Discount{Type: enum.DiscountTypeFlat, Amount: decimal.Zero}

// ApplyDiscount reduces a subtotal by the discount and clamps the result
// at zero. A zero or negative discount amount leaves the subtotal
// untouched.
func ApplyDiscount(subtotalCents int64, d Discount) int64 {
	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return subtotalCents
	}

	var reduction int64
	switch d.Type {
	case enum.DiscountTypePercentage:
		reduction = PercentOf(subtotalCents, d.Amount)
	default:
		reduction = Cents(d.Amount)
	}

	return ClampNonNegative(subtotalCents - reduction)
}
