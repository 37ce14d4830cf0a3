package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode represents the payment arrangement chosen when a sale or
// purchase is created
type PaymentMode string

const (
	PaymentModePayNow     PaymentMode = "pay_now"
	PaymentModePayLater   PaymentMode = "pay_later"
	PaymentModePayPartial PaymentMode = "pay_partial"
)

func (m PaymentMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known payment mode
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModePayNow, PaymentModePayLater, PaymentModePayPartial:
		return true
	}
	return false
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = PaymentMode(str)
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModePayLater
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = PaymentMode(v)
	case []byte:
		*m = PaymentMode(string(v))
	}
	return nil
}
