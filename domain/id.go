package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an identifier supplied by a caller as either a JSON string or a JSON number.
// It keeps the original kind so it marshals back the way it was received.
// Two IDs designate the same entity when their String forms are equal.
type ID struct {
	value   string
	numeric bool
}

func NewID(value string) ID {
	return ID{value: value}
}

func NewNumericID(value int64) ID {
	return ID{value: strconv.FormatInt(value, 10), numeric: true}
}

func (id ID) String() string { return id.value }

func (id ID) IsZero() bool { return id.value == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ID{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}

// IDFromValue converts a decoded JSON value into an ID.
// Only non-empty strings and numbers qualify.
func IDFromValue(v any) (ID, bool) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return ID{}, false
		}
		return NewID(t), true
	case float64:
		return ID{value: strconv.FormatFloat(t, 'f', -1, 64), numeric: true}, true
	case json.Number:
		return ID{value: t.String(), numeric: true}, true
	case int:
		return NewNumericID(int64(t)), true
	case int64:
		return NewNumericID(t), true
	case ID:
		return t, !t.IsZero()
	default:
		return ID{}, false
	}
}
