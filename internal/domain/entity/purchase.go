package entity

import (
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase represents a stock purchase from a supplier. Like sales,
// payments accumulate against the total in the payments table.
type Purchase struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID   *uuid.UUID       `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	PurchaseNo   string           `gorm:"size:100;unique;not null" json:"purchase_no"`
	PurchaseDate time.Time        `gorm:"type:date;not null" json:"purchase_date"`
	PaymentMode  enum.PaymentMode `gorm:"size:20;default:'pay_later'" json:"payment_mode"`
	Total        int64            `gorm:"default:0" json:"-"` // Stored in cents, derived from items
	Paid         int64            `gorm:"default:0" json:"-"` // Cached sum of payments, cents
	Due          int64            `gorm:"default:0" json:"-"` // Total - Paid, cents
	Note         *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
		Paid  float64 `json:"paid"`
		Due   float64 `json:"due"`
	}{
		Alias: Alias(p),
		Total: float64(p.Total) / 100,
		Paid:  float64(p.Paid) / 100,
		Due:   float64(p.Due) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// Settled reports whether the purchase has no outstanding balance
func (p *Purchase) Settled() bool {
	return p.Due <= 0
}

// PurchaseItem represents a line item in a purchase
type PurchaseItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchase_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	UnitCost   int64          `gorm:"not null" json:"-"` // Stored in cents
	Total      int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i PurchaseItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseItem
	return json.Marshal(&struct {
		Alias
		UnitCost float64 `json:"unit_cost"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(i),
		UnitCost: float64(i.UnitCost) / 100,
		Total:    float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase item
func (i *PurchaseItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
