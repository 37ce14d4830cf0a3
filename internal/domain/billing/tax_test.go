package billing

import (
	"testing"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyTax(t *testing.T) {
	tests := []struct {
		name  string
		after int64
		tax   TaxSnapshot
		want  int64
	}{
		{
			name:  "disabled tax is a no-op regardless of rate",
			after: 100000,
			tax:   TaxSnapshot{Enabled: false, Rate: decimal.NewFromInt(16)},
			want:  100000,
		},
		{
			name:  "zero rate is a no-op",
			after: 100000,
			tax:   TaxSnapshot{Enabled: true, Rate: decimal.Zero},
			want:  100000,
		},
		{
			name:  "five percent",
			after: 585000, // 5850.00
			tax:   TaxSnapshot{Enabled: true, Rate: decimal.NewFromInt(5)},
			want:  614250, // 6142.50
		},
		{
			name:  "ten percent",
			after: 90000,
			tax:   TaxSnapshot{Enabled: true, Rate: decimal.NewFromInt(10)},
			want:  99000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyTax(tt.after, tt.tax))
		})
	}
}

// Discount must be applied before tax: 1000 with a flat 100 discount and
// 10% tax is (1000-100)*1.10 = 990, not 1000*1.10 - 100 = 1000.
func TestGrandTotal_DiscountBeforeTax(t *testing.T) {
	subtotal := int64(100000)
	d := Discount{Type: enum.DiscountTypeFlat, Amount: decimal.NewFromInt(100)}
	tax := TaxSnapshot{Enabled: true, Rate: decimal.NewFromInt(10)}

	got := GrandTotal(subtotal, d, tax)
	assert.Equal(t, int64(99000), got)

	taxedFirst := ApplyDiscount(ApplyTax(subtotal, tax), d)
	assert.NotEqual(t, taxedFirst, got, "pipeline order must matter")
}

// Checkout scenario: 3 days at 2000/day plus an unpaid 500 food order,
// 10% discount, 5% tax -> 6500 -> 5850 -> 6142.50.
func TestGrandTotal_CheckoutScenario(t *testing.T) {
	room := RoomCharge(3, 200000)
	food := UnpaidFoodTotal([]entity.FoodOrder{{Total: 50000, Paid: false}})
	subtotal := room + food
	assert.Equal(t, int64(650000), subtotal)

	d := Discount{Type: enum.DiscountTypePercentage, Amount: decimal.NewFromInt(10)}
	tax := TaxSnapshot{Enabled: true, Rate: decimal.NewFromInt(5)}

	assert.Equal(t, int64(614250), GrandTotal(subtotal, d, tax))
}

func TestSnapshotTax(t *testing.T) {
	snap := SnapshotTax(&entity.BusinessSettings{TaxEnabled: true, TaxRate: 16})
	assert.True(t, snap.Enabled)
	assert.True(t, snap.Rate.Equal(decimal.NewFromInt(16)))

	assert.False(t, SnapshotTax(nil).Enabled)
}
