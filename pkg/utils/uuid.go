package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo generates a unique invoice number
func GenerateInvoiceNo() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

// GeneratePurchaseNo generates a unique purchase reference number
func GeneratePurchaseNo() string {
	return "PUR-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateOrderNo generates a unique food order number
func GenerateOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
