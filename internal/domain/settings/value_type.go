package settings

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidValue = errors.New("invalid setting value")

// ValueType declares how a setting's value is edited and validated.
type ValueType string

const (
	Boolean   ValueType = "boolean"
	ShortText ValueType = "short_text"
	LongText  ValueType = "long_text"
)

func (t ValueType) Valid() bool {
	switch t {
	case Boolean, ShortText, LongText:
		return true
	}
	return false
}

// Check validates a raw value against the declared type. Booleans are
// stored as the literal strings "true" and "false".
func (t ValueType) Check(value string) error {
	switch t {
	case Boolean:
		if value != "true" && value != "false" {
			return fmt.Errorf("%w: %q is not true or false", ErrInvalidValue, value)
		}
	case ShortText:
		if strings.ContainsAny(value, "\r\n") {
			return fmt.Errorf("%w: short text cannot span lines", ErrInvalidValue)
		}
	case LongText:
	default:
		return fmt.Errorf("%w: unknown value type %q", ErrInvalidValue, t)
	}
	return nil
}

// InferValueType derives a type from the key for rows created before
// value_type existed.
func InferValueType(key string) ValueType {
	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "enabled"):
		return Boolean
	case strings.Contains(k, "text"), strings.Contains(k, "bio"):
		return LongText
	default:
		return ShortText
	}
}
