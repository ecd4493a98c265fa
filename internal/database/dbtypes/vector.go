package dbtypes

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Vector is an embedding vector stored as a "[0.12,0.34,...]" text column.
type Vector []float32

func (v Vector) Value() (driver.Value, error) {
	if len(v) == 0 {
		return "[]", nil
	}
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%f", f)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ",")), nil
}

func (v *Vector) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}
	switch data := value.(type) {
	case string:
		return v.parse(data)
	case []byte:
		return v.parse(string(data))
	default:
		return fmt.Errorf("unsupported type for Vector: %T", value)
	}
}

func (v *Vector) parse(s string) error {
	s = strings.Trim(s, "[] ")
	if s == "" {
		*v = []float32{}
		return nil
	}
	parts := strings.Split(s, ",")
	vec := make([]float32, len(parts))
	for i, p := range parts {
		var f float32
		_, err := fmt.Sscanf(strings.TrimSpace(p), "%f", &f)
		if err != nil {
			return err
		}
		vec[i] = f
	}
	*v = vec
	return nil
}
