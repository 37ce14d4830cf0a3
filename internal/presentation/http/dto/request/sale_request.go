package request

import "time"

// SaleItemRequest represents a sale line item
type SaleItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// CreateSaleRequest represents a create sale request. PaidAmount is
// only read for the pay_partial mode.
type CreateSaleRequest struct {
	CustomerID  string            `json:"customer_id"`
	SaleDate    *time.Time        `json:"sale_date"`
	PaymentMode string            `json:"payment_mode" binding:"required,oneof=pay_now pay_later pay_partial"`
	PaidAmount  float64           `json:"paid_amount"`
	Method      string            `json:"method"`
	Note        *string           `json:"note"`
	Items       []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}
