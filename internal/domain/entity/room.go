package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room represents a rentable room in the property
type Room struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Number    string         `gorm:"size:20;unique;not null" json:"number"`
	Type      string         `gorm:"size:50;default:'standard'" json:"type"`
	DailyRate int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Occupied  bool           `gorm:"default:false" json:"occupied"`
	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r Room) MarshalJSON() ([]byte, error) {
	type Alias Room
	return json.Marshal(&struct {
		Alias
		DailyRate float64 `json:"daily_rate"`
	}{
		Alias:     Alias(r),
		DailyRate: float64(r.DailyRate) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new room
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}
