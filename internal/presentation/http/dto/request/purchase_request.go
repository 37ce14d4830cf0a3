package request

import "time"

// PurchaseItemRequest represents a purchase line item
type PurchaseItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	UnitCost float64 `json:"unit_cost" binding:"gte=0"`
}

// CreatePurchaseRequest represents a create purchase request
type CreatePurchaseRequest struct {
	SupplierID   string                `json:"supplier_id"`
	PurchaseDate *time.Time            `json:"purchase_date"`
	PaymentMode  string                `json:"payment_mode" binding:"required,oneof=pay_now pay_later pay_partial"`
	PaidAmount   float64               `json:"paid_amount"`
	Method       string                `json:"method"`
	Note         *string               `json:"note"`
	Items        []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}
