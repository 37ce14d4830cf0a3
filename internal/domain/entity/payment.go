package entity

import (
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRecord represents a single payment applied against a billable
// record (sale, purchase or guest stay). Records are append-only;
// refunds are out of scope, so amounts are always positive.
type PaymentRecord struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	BillableID uuid.UUID          `gorm:"type:uuid;not null;index" json:"billable_id"`
	Kind       enum.BillableKind  `gorm:"size:20;not null;index" json:"kind"`
	Amount     int64              `gorm:"not null" json:"-"` // Stored in cents
	Method     enum.PaymentMethod `gorm:"size:20;not null;default:'cash'" json:"method"`
	Note       *string            `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p PaymentRecord) MarshalJSON() ([]byte, error) {
	type Alias PaymentRecord
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment record
func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentRecord model
func (PaymentRecord) TableName() string {
	return "payment_records"
}
