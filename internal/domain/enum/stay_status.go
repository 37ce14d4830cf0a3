package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// StayStatus represents the lifecycle state of a guest stay
type StayStatus int

const (
	StayStatusCheckedIn  StayStatus = 0
	StayStatusCheckedOut StayStatus = 1
)

func (s StayStatus) String() string {
	names := [...]string{"CheckedIn", "CheckedOut"}
	if int(s) < 0 || int(s) >= len(names) {
		return "CheckedIn"
	}
	return names[s]
}

func (s StayStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *StayStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = StayStatus(i)
		return nil
	}
	switch str {
	case "CheckedIn":
		*s = StayStatusCheckedIn
	case "CheckedOut":
		*s = StayStatusCheckedOut
	}
	return nil
}

func (s StayStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *StayStatus) Scan(value interface{}) error {
	if value == nil {
		*s = StayStatusCheckedIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = StayStatus(v)
	case int:
		*s = StayStatus(v)
	}
	return nil
}
