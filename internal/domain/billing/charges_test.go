package billing

import (
	"testing"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayDays(t *testing.T) {
	now := date(2024, 6, 15)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut *time.Time
		want     int
	}{
		{
			name:     "same day checkout bills one day",
			checkIn:  date(2024, 6, 10),
			checkOut: timePtr(date(2024, 6, 10)),
			want:     1,
		},
		{
			name:     "three full days",
			checkIn:  date(2024, 6, 10),
			checkOut: timePtr(date(2024, 6, 13)),
			want:     3,
		},
		{
			name:     "partial day rounds up",
			checkIn:  date(2024, 6, 10),
			checkOut: timePtr(time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)),
			want:     3,
		},
		{
			name:     "open stay billed to now",
			checkIn:  date(2024, 6, 13),
			checkOut: nil,
			want:     2,
		},
		{
			name:     "checkout before checkin floors to one day",
			checkIn:  date(2024, 6, 10),
			checkOut: timePtr(date(2024, 6, 9)),
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StayDays(tt.checkIn, tt.checkOut, now))
		})
	}
}

func TestRoomCharge(t *testing.T) {
	assert.Equal(t, int64(600000), RoomCharge(3, 200000))
	assert.Equal(t, int64(0), RoomCharge(3, 0), "no rate means no room charge")
	assert.Equal(t, int64(0), RoomCharge(0, 200000))
}

func TestUnpaidFoodTotal(t *testing.T) {
	orders := []entity.FoodOrder{
		{Total: 50000, Paid: false},
		{Total: 30000, Paid: true},
		{Total: 20000, Paid: false},
	}

	assert.Equal(t, int64(70000), UnpaidFoodTotal(orders))
	assert.Equal(t, int64(0), UnpaidFoodTotal(nil))
}

func TestUnpaidFoodTotal_ToggleRestoresContribution(t *testing.T) {
	orders := []entity.FoodOrder{{Total: 50000, Paid: false}}
	before := UnpaidFoodTotal(orders)

	// Toggle twice: paid then unpaid again.
	orders[0].Paid = true
	assert.Equal(t, int64(0), UnpaidFoodTotal(orders))
	orders[0].Paid = false
	assert.Equal(t, before, UnpaidFoodTotal(orders))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
