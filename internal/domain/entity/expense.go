package entity

import (
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense represents an operating expense
type Expense struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Category    enum.ExpenseCategory `gorm:"size:50;default:'other'" json:"category"`
	Description string               `gorm:"size:255;not null" json:"description"`
	Amount      int64                `gorm:"not null" json:"-"` // Stored in cents
	Method      enum.PaymentMethod   `gorm:"size:20;default:'cash'" json:"method"`
	ExpenseDate time.Time            `gorm:"type:date;not null" json:"expense_date"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	DeletedAt   gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
