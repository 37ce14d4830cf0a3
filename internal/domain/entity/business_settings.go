package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessSettings holds property-wide configuration. A single row is
// seeded at startup; computations read it fresh at the start of every
// billing calculation instead of caching it across requests.
type BusinessSettings struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PropertyName string         `gorm:"size:255;default:'Hotel Manager'" json:"property_name"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Currency     string         `gorm:"size:10;default:'PKR'" json:"currency"`
	TaxEnabled   bool           `gorm:"default:false" json:"tax_enabled"`
	TaxRate      float64        `gorm:"type:decimal(5,2);default:0" json:"tax_rate"` // Percent, 0-100
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *BusinessSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessSettings model
func (BusinessSettings) TableName() string {
	return "business_settings"
}
