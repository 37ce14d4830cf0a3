package billing

import (
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/entity"
)

// StayDays returns the number of billable days between check-in and
// check-out. Open stays (nil checkOut) are billed up to now. A same-day
// or zero-length stay always bills at least one day.
func StayDays(checkIn time.Time, checkOut *time.Time, now time.Time) int {
	end := now
	if checkOut != nil {
		end = *checkOut
	}

	span := end.Sub(checkIn)
	if span <= 0 {
		return 1
	}

	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// RoomCharge returns the room charge in cents for a stay of the given
// length. Walk-in guests have no room and contribute zero upstream.
func RoomCharge(stayDays int, dailyRateCents int64) int64 {
	if stayDays < 1 || dailyRateCents <= 0 {
		return 0
	}
	return int64(stayDays) * dailyRateCents
}

// LineTotal returns quantity * unit price in cents for one line item.
func LineTotal(quantity int, unitPriceCents int64) int64 {
	return int64(quantity) * unitPriceCents
}

// UnpaidFoodTotal sums the totals of the orders that have not been paid
// or folded into a checkout bill yet.
func UnpaidFoodTotal(orders []entity.FoodOrder) int64 {
	var total int64
	for _, o := range orders {
		if !o.Paid {
			total += o.Total
		}
	}
	return total
}
