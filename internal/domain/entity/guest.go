package entity

import (
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest represents a guest stay. A guest with no room assigned is a
// walk-in and accrues no room charges.
type Guest struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	RoomID   *uuid.UUID      `gorm:"type:uuid;index" json:"room_id,omitempty"`
	Name     string          `gorm:"size:255;not null" json:"name"`
	Phone    *string         `gorm:"size:50" json:"phone,omitempty"`
	IDNumber *string         `gorm:"size:100;column:id_number" json:"id_number,omitempty"`
	Address  *string         `gorm:"type:text" json:"address,omitempty"`
	Status   enum.StayStatus `gorm:"default:0" json:"status"`
	CheckIn  time.Time       `gorm:"not null" json:"check_in"`
	CheckOut *time.Time      `json:"check_out,omitempty"`

	// Bill breakdown cached at checkout. All amounts in cents.
	StayDays       int     `gorm:"default:0" json:"stay_days"`
	RoomCharges    int64   `gorm:"default:0" json:"-"`
	FoodCharges    int64   `gorm:"default:0" json:"-"`
	DiscountAmount int64   `gorm:"default:0" json:"-"`
	TaxRate        float64 `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	TaxAmount      int64   `gorm:"default:0" json:"-"`
	Total          int64   `gorm:"default:0" json:"-"`
	Paid           bool    `gorm:"default:false" json:"paid"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Room       *Room       `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	FoodOrders []FoodOrder `gorm:"foreignKey:GuestID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (g Guest) MarshalJSON() ([]byte, error) {
	type Alias Guest
	return json.Marshal(&struct {
		Alias
		RoomCharges    float64 `json:"room_charges"`
		FoodCharges    float64 `json:"food_charges"`
		DiscountAmount float64 `json:"discount_amount"`
		TaxAmount      float64 `json:"tax_amount"`
		Total          float64 `json:"total"`
	}{
		Alias:          Alias(g),
		RoomCharges:    float64(g.RoomCharges) / 100,
		FoodCharges:    float64(g.FoodCharges) / 100,
		DiscountAmount: float64(g.DiscountAmount) / 100,
		TaxAmount:      float64(g.TaxAmount) / 100,
		Total:          float64(g.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new guest
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Guest model
func (Guest) TableName() string {
	return "guests"
}

// IsWalkIn reports whether the guest has no room assigned
func (g *Guest) IsWalkIn() bool {
	return g.RoomID == nil
}
