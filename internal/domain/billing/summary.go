package billing

import (
	"encoding/json"
	"time"

	"github.com/Haiderali27-hub/hotel-manager-sub001/internal/domain/enum"
	"github.com/google/uuid"
)

// EntityBalance is one billable record's contribution to an owner's
// account: a sale for a customer, a purchase for a supplier.
type EntityBalance struct {
	ID        uuid.UUID         `json:"id"`
	Kind      enum.BillableKind `json:"kind"`
	Reference string            `json:"reference"`
	Date      time.Time         `json:"date"`
	Total     int64             `json:"-"`
	Paid      int64             `json:"-"`
}

// Balance returns the outstanding amount, floored at zero for display.
// An over-payment shows as zero here; the raw sums in OwnerSummary keep
// the inconsistency visible.
func (e EntityBalance) Balance() int64 {
	return ClampNonNegative(e.Total - e.Paid)
}

// Settled reports whether nothing is outstanding on the record.
func (e EntityBalance) Settled() bool {
	return e.Total-e.Paid <= 0
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e EntityBalance) MarshalJSON() ([]byte, error) {
	type Alias EntityBalance
	return json.Marshal(&struct {
		Alias
		Total   float64 `json:"total"`
		Paid    float64 `json:"paid"`
		Balance float64 `json:"balance"`
		Settled bool    `json:"settled"`
	}{
		Alias:   Alias(e),
		Total:   float64(e.Total) / 100,
		Paid:    float64(e.Paid) / 100,
		Balance: float64(e.Balance()) / 100,
		Settled: e.Settled(),
	})
}

// OwnerSummary is the roll-up of every billable record owned by one
// customer or supplier. It is a pure read-model recomputed on demand.
type OwnerSummary struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Entities    int       `json:"entities"`
	TotalBilled int64     `json:"-"`
	AmountPaid  int64     `json:"-"`
	BalanceDue  int64     `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s OwnerSummary) MarshalJSON() ([]byte, error) {
	type Alias OwnerSummary
	return json.Marshal(&struct {
		Alias
		TotalBilled float64 `json:"total_billed"`
		AmountPaid  float64 `json:"amount_paid"`
		BalanceDue  float64 `json:"balance_due"`
	}{
		Alias:       Alias(s),
		TotalBilled: float64(s.TotalBilled) / 100,
		AmountPaid:  float64(s.AmountPaid) / 100,
		BalanceDue:  float64(s.BalanceDue) / 100,
	})
}

// Summarize rolls a set of entity balances up into an owner summary.
// The balance due is the sum of per-entity balances, so over-payment on
// one record never hides an outstanding balance on another.
func Summarize(rows []EntityBalance) OwnerSummary {
	var s OwnerSummary
	s.Entities = len(rows)
	for _, r := range rows {
		s.TotalBilled += r.Total
		s.AmountPaid += r.Paid
		s.BalanceDue += r.Balance()
	}
	return s
}
