package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONField persists an arbitrary value as a JSON column.
type JSONField[T any] struct {
	Data T
}

func MakeJSONField[T any](data T) *JSONField[T] {
	return &JSONField[T]{Data: data}
}

func (j JSONField[T]) Value() (driver.Value, error) {
	return json.Marshal(j.Data)
}

func (j *JSONField[T]) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, &j.Data)
	case string:
		return json.Unmarshal([]byte(v), &j.Data)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported type %T for JSONField", value)
	}
}
