package request

import "time"

// CheckInRequest represents a guest check-in request. RoomID is omitted
// for walk-in guests who only order food.
type CheckInRequest struct {
	RoomID   string     `json:"room_id"`
	Name     string     `json:"name" binding:"required,min=2,max=255"`
	Phone    *string    `json:"phone"`
	IDNumber *string    `json:"id_number"`
	Address  *string    `json:"address"`
	CheckIn  *time.Time `json:"check_in"`
}

// DiscountRequest represents a discount applied at checkout
type DiscountRequest struct {
	Type        string  `json:"type" binding:"required,oneof=percentage fixed"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// CheckoutRequest represents a guest checkout request
type CheckoutRequest struct {
	Discount *DiscountRequest `json:"discount"`
	Method   string           `json:"method"`
}
