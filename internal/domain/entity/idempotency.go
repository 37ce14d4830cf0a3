package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores processed requests so retried payment and
// checkout submissions replay the original response instead of writing
// twice.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"uniqueIndex;size:255;not null"` // The idempotency key from the client
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`      // User who made the request
	Endpoint     string    `gorm:"size:255;not null"`             // e.g. "POST /sales/:id/payments"
	RequestHash  string    `gorm:"size:64"`                       // SHA256 hash of the request body
	ResponseCode int       `gorm:"not null"`                      // HTTP status of the original response
	ResponseBody string    `gorm:"type:text"`                     // Cached JSON response body
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
