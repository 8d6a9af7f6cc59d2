package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how an order discount is expressed
type DiscountType int

const (
	DiscountTypeFlat       DiscountType = 0 // absolute amount in minor currency units
	DiscountTypePercentage DiscountType = 1 // percentage of the subtotal, 0-100
)

func (t DiscountType) String() string {
	names := [...]string{"flat", "percentage"}
	if int(t) < 0 || int(t) >= len(names) {
		return "flat"
	}
	return names[t]
}

// ParseDiscountType converts the wire representation to a DiscountType
func ParseDiscountType(s string) (DiscountType, bool) {
	switch s {
	case "flat":
		return DiscountTypeFlat, true
	case "percentage":
		return DiscountTypePercentage, true
	}
	return DiscountTypeFlat, false
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	switch str {
	case "flat":
		*t = DiscountTypeFlat
	case "percentage":
		*t = DiscountTypePercentage
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypeFlat
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}
