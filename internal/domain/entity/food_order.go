package entity

import (
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodOrder represents a restaurant order charged to a guest. Payment
// state is a plain toggle: the order is either fully paid or fully
// unpaid, there is no partial state.
type FoodOrder struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	GuestID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"guest_id"`
	OrderNo   string             `gorm:"size:100;unique;not null" json:"order_no"`
	OrderDate time.Time          `gorm:"not null" json:"order_date"`
	Total     int64              `gorm:"default:0" json:"-"` // Stored in cents, derived from items
	Paid      bool               `gorm:"default:false" json:"paid"`
	PaidAt    *time.Time         `json:"paid_at,omitempty"`
	Method    enum.PaymentMethod `gorm:"size:20;default:'cash'" json:"method"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User  User            `gorm:"foreignKey:UserID" json:"-"`
	Guest Guest           `gorm:"foreignKey:GuestID" json:"-"`
	Items []FoodOrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o FoodOrder) MarshalJSON() ([]byte, error) {
	type Alias FoodOrder
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new food order
func (o *FoodOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodOrder model
func (FoodOrder) TableName() string {
	return "food_orders"
}

// FoodOrderItem represents a line item in a food order
type FoodOrderItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice int64          `gorm:"not null" json:"-"` // Stored in cents
	Total     int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order FoodOrder `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i FoodOrderItem) MarshalJSON() ([]byte, error) {
	type Alias FoodOrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		Total:     float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new food order item
func (i *FoodOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodOrderItem model
func (FoodOrderItem) TableName() string {
	return "food_order_items"
}
