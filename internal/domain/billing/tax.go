package billing

import (
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TaxSnapshot is the tax configuration captured at the start of one
// billing computation. Callers re-read the business settings for every
// computation rather than holding a snapshot across requests, so a
// settings change mid-session cannot interleave inconsistently.
type TaxSnapshot struct {
	Enabled bool
	Rate    decimal.Decimal // Percent, 0-100
}

// SnapshotTax captures the tax portion of the business settings.
func SnapshotTax(s *entity.BusinessSettings) TaxSnapshot {
	if s == nil {
		return TaxSnapshot{}
	}
	return TaxSnapshot{
		Enabled: s.TaxEnabled,
		Rate:    decimal.NewFromFloat(s.TaxRate),
	}
}

// ApplyTax grows the post-discount amount by the configured rate. It is
// a no-op when tax is disabled or the rate is not positive. Tax is
// always computed on the post-discount amount: the pipeline is
// subtotal -> discount -> tax -> grand total.
func ApplyTax(afterDiscountCents int64, t TaxSnapshot) int64 {
	if !t.Enabled || t.Rate.LessThanOrEqual(decimal.Zero) {
		return afterDiscountCents
	}
	return afterDiscountCents + PercentOf(afterDiscountCents, t.Rate)
}

// GrandTotal runs the full pipeline over a subtotal.
func GrandTotal(subtotalCents int64, d Discount, t TaxSnapshot) int64 {
	return ApplyTax(ApplyDiscount(subtotalCents, d), t)
}
