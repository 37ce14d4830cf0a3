package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseCategory classifies an operating expense
type ExpenseCategory string

const (
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategorySalaries    ExpenseCategory = "salaries"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategorySupplies    ExpenseCategory = "supplies"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

func (c ExpenseCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known expense category
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryUtilities, ExpenseCategorySalaries, ExpenseCategoryMaintenance, ExpenseCategorySupplies, ExpenseCategoryOther:
		return true
	}
	return false
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = ExpenseCategory(str)
	return nil
}

func (c ExpenseCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *ExpenseCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ExpenseCategoryOther
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = ExpenseCategory(v)
	case []byte:
		*c = ExpenseCategory(string(v))
	}
	return nil
}
