package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillableKind identifies which kind of record a payment is applied against
type BillableKind string

const (
	BillableKindSale      BillableKind = "sale"
	BillableKindPurchase  BillableKind = "purchase"
	BillableKindFoodOrder BillableKind = "food_order"
	BillableKindGuestStay BillableKind = "guest_stay"
)

func (k BillableKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known billable kind
func (k BillableKind) IsValid() bool {
	switch k {
	case BillableKindSale, BillableKindPurchase, BillableKindFoodOrder, BillableKindGuestStay:
		return true
	}
	return false
}

// Ledgered reports whether the kind tracks payments as an accumulating
// list of records. Food orders use the boolean toggle model instead.
func (k BillableKind) Ledgered() bool {
	return k == BillableKindSale || k == BillableKindPurchase
}

func (k BillableKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(k))
}

func (k *BillableKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*k = BillableKind(str)
	return nil
}

func (k BillableKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *BillableKind) Scan(value interface{}) error {
	if value == nil {
		*k = BillableKindSale
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = BillableKind(v)
	case []byte:
		*k = BillableKind(string(v))
	}
	return nil
}
