package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

// StringArray maps a postgres TEXT[] column.
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return pq.Array([]string(s)).Value()
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var strs []string
	if err := pq.Array(&strs).Scan(value); err != nil {
		return fmt.Errorf("failed to scan string array: %w", err)
	}
	*s = strs
	return nil
}

// BoolMap maps a JSONB object of flags.
type BoolMap map[string]bool

func (m BoolMap) Value() (driver.Value, error) { return jsonValue(m) }

func (m *BoolMap) Scan(value interface{}) error { return jsonScan(value, m) }

// FloatMap maps a JSONB object of scores.
type FloatMap map[string]float64

func (m FloatMap) Value() (driver.Value, error) { return jsonValue(m) }

func (m *FloatMap) Scan(value interface{}) error { return jsonScan(value, m) }

// JSONMap maps a free-form JSONB object.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) { return jsonValue(m) }

func (m *JSONMap) Scan(value interface{}) error { return jsonScan(value, m) }

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(value interface{}, out interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
