package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is the caller-supplied input: field name → untyped value as
// decoded from JSON. It lives for a single pipeline invocation.
type RawRecord map[string]any

// TypedRecord is a RawRecord after coercion against a schema. Every
// schema field is present; fields filled from a spec default or supplied
// as an empty string are tracked so the confidence stage can measure
// completeness.
type TypedRecord struct {
	values   map[string]any
	provided map[string]bool
}

// NewTypedRecord creates an empty typed record sized for a schema.
func NewTypedRecord(size int) *TypedRecord {
	return &TypedRecord{
		values:   make(map[string]any, size),
		provided: make(map[string]bool, size),
	}
}

// Set stores a coerced value and whether the caller actually provided it.
func (r *TypedRecord) Set(name string, value any, provided bool) {
	r.values[name] = value
	r.provided[name] = provided
}

// Value returns the coerced value for a field.
func (r *TypedRecord) Value(name string) any {
	return r.values[name]
}

// Float returns the numeric view of a field: ints and floats as-is,
// booleans as 0/1. Non-numeric fields return 0.
func (r *TypedRecord) Float(name string) float64 {
	switch v := r.values[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Bool returns the boolean view of a field; numeric fields are true when
// non-zero.
func (r *TypedRecord) Bool(name string) bool {
	switch v := r.values[name].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

// Provided reports whether the caller supplied a non-empty value for the
// field (as opposed to a schema default filling it in).
func (r *TypedRecord) Provided(name string) bool {
	return r.provided[name]
}

// ProvidedCount returns how many fields the caller actually supplied.
func (r *TypedRecord) ProvidedCount() int {
	n := 0
	for _, p := range r.provided {
		if p {
			n++
		}
	}
	return n
}

// Len returns the number of fields in the record.
func (r *TypedRecord) Len() int {
	return len(r.values)
}

// CoerceValue converts a raw JSON value to the declared field type.
// Numeric strings are accepted for numeric fields, and the usual yes/no
// spellings for booleans, matching what browser form data produces.
func CoerceValue(spec FieldSpec, raw any) (any, error) {
	switch spec.Type {
	case FieldInteger, FieldOrdinal:
		f, err := toFloat(raw)
		if err != nil {
			return nil, err
		}
		return int(f), nil
	case FieldFloat:
		return toFloat(raw)
	case FieldBool:
		return toBool(raw)
	case FieldString:
		switch v := raw.(type) {
		case string:
			return v, nil
		default:
			return fmt.Sprintf("%v", v), nil
		}
	default:
		return nil, fmt.Errorf("unsupported field type %q", spec.Type)
	}
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %T", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y":
			return true, nil
		case "0", "false", "no", "n", "":
			return false, nil
		default:
			return false, fmt.Errorf("not a boolean: %q", v)
		}
	default:
		return false, fmt.Errorf("not a boolean: %T", raw)
	}
}

// FeatureVector is the fixed-order normalized numeric encoding of a
// typed record. Index order matches schema declaration order; the vector
// is immutable once built.
type FeatureVector []float64
