package billing

import (
	"testing"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		discount Discount
		want     int64
	}{
		{
			name:     "zero amount is a no-op",
			subtotal: 100000,
			discount: Discount{Type: enum.DiscountTypeFlat, Amount: decimal.Zero},
			want:     100000,
		},
		{
			name:     "flat discount",
			subtotal: 100000, // 1000.00
			discount: Discount{Type: enum.DiscountTypeFlat, Amount: decimal.NewFromInt(100)},
			want:     90000,
		},
		{
			name:     "percentage discount",
			subtotal: 650000, // 6500.00
			discount: Discount{Type: enum.DiscountTypePercentage, Amount: decimal.NewFromInt(10)},
			want:     585000,
		},
		{
			name:     "flat discount larger than subtotal clamps to zero",
			subtotal: 50000,
			discount: Discount{Type: enum.DiscountTypeFlat, Amount: decimal.NewFromInt(900)},
			want:     0,
		},
		{
			name:     "hundred percent",
			subtotal: 123450,
			discount: Discount{Type: enum.DiscountTypePercentage, Amount: decimal.NewFromInt(100)},
			want:     0,
		},
		{
			name:     "fractional percentage rounds to a cent",
			subtotal: 100001, // 1000.01, 2.5% = 25.00025 -> 25.00
			discount: Discount{Type: enum.DiscountTypePercentage, Amount: decimal.NewFromFloat(2.5)},
			want:     97501,
		},
		{
			name:     "negative amount is a no-op",
			subtotal: 100000,
			discount: Discount{Type: enum.DiscountTypeFlat, Amount: decimal.NewFromInt(-50)},
			want:     100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDiscount(tt.subtotal, tt.discount))
		})
	}
}

func TestApplyDiscount_NeverNegative(t *testing.T) {
	subtotals := []int64{0, 1, 99, 100000, 999999999}
	discounts := []Discount{
		{Type: enum.DiscountTypeFlat, Amount: decimal.NewFromInt(1000000)},
		{Type: enum.DiscountTypePercentage, Amount: decimal.NewFromInt(100)},
		{Type: enum.DiscountTypePercentage, Amount: decimal.NewFromFloat(99.99)},
	}

	for _, s := range subtotals {
		for _, d := range discounts {
			assert.GreaterOrEqual(t, ApplyDiscount(s, d), int64(0))
		}
	}
}
