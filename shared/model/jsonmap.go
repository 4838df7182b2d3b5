package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONMap maps a free-form object onto a postgres jsonb column. Used for
// distillery operating hours and homepage section content, where the set of
// keys is owned by the editor rather than the schema.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb value: %w", err)
	}

	return raw, nil
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported source type for jsonb value")
	}

	if err := json.Unmarshal(raw, m); err != nil {
		return fmt.Errorf("failed to unmarshal jsonb value: %w", err)
	}

	return nil
}
