package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SlotType is the closed set of meal slots a plan cycles through.
type SlotType string

const (
	SlotBreakfast SlotType = "breakfast"
	SlotLunch     SlotType = "lunch"
	SlotDinner    SlotType = "dinner"
	SlotSnack     SlotType = "snack"
)

// Meal is one generated meal in a plan: a copy of a catalog definition plus
// the slot it was generated for.
type Meal struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	PrepTime    string   `json:"prep_time"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fat         int      `json:"fat"`
	MealType    SlotType `json:"meal_type"`
}

// MealList is stored as a jsonb column on meal plans.
type MealList []Meal

func (m MealList) Value() (driver.Value, error) {
	if m == nil {
		m = MealList{}
	}
	return json.Marshal(m)
}

func (m *MealList) Scan(value interface{}) error {
	return scanJSON(m, value)
}

// StringList is stored as a jsonb column (allergies on users and plans).
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	return scanJSON(s, value)
}

func scanJSON(dest interface{}, value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into jsonb column", value)
	}
}
