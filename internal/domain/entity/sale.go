package entity

import (
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a sale to a customer. Payments accumulate against the
// total in the payments table; Paid and Due are cached from that ledger.
type Sale struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID  *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	InvoiceNo   string           `gorm:"size:100;unique;not null" json:"invoice_no"`
	SaleDate    time.Time        `gorm:"type:date;not null" json:"sale_date"`
	PaymentMode enum.PaymentMode `gorm:"size:20;default:'pay_later'" json:"payment_mode"`
	Total       int64            `gorm:"default:0" json:"-"` // Stored in cents, derived from items
	Paid        int64            `gorm:"default:0" json:"-"` // Cached sum of payments, cents
	Due         int64            `gorm:"default:0" json:"-"` // Total - Paid, cents
	Note        *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User     User       `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
		Paid  float64 `json:"paid"`
		Due   float64 `json:"due"`
	}{
		Alias: Alias(s),
		Total: float64(s.Total) / 100,
		Paid:  float64(s.Paid) / 100,
		Due:   float64(s.Due) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Settled reports whether the sale has no outstanding balance
func (s *Sale) Settled() bool {
	return s.Due <= 0
}

// SaleItem represents a line item in a sale
type SaleItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice int64          `gorm:"not null" json:"-"` // Stored in cents
	Total     int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
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

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
