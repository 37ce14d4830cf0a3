package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a checkout discount is applied
type DiscountType string

const (
	DiscountTypeFlat       DiscountType = "flat"
	DiscountTypePercentage DiscountType = "percentage"
)

func (t DiscountType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known discount type
func (t DiscountType) IsValid() bool {
	return t == DiscountTypeFlat || t == DiscountTypePercentage
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = DiscountType(str)
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypeFlat
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = DiscountType(v)
	case []byte:
		*t = DiscountType(string(v))
	}
	return nil
}
