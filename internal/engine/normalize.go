package engine

import (
	"strings"

	"github.com/health-risk-server/internal/domain"
)

// ValidateAndNormalize coerces a raw record against a schema and maps it
// into the canonical feature vector. It is a pure function of its
// inputs: no defaults are invented beyond those the schema declares, and
// absent required fields are rejected, not zero-filled.
//
// Normalization per field type: numeric fields scale linearly by the
// spec's denominator (clamped to [0,1] only where the spec says so —
// some domains deliberately let extreme values exceed 1.0), booleans map
// to 0/1, ordinals divide by their maximum.
func ValidateAndNormalize(raw domain.RawRecord, schema *domain.SchemaEntry) (*domain.TypedRecord, domain.FeatureVector, error) {
	typed := domain.NewTypedRecord(schema.Len())
	vector := make(domain.FeatureVector, schema.Len())

	for i, spec := range schema.Fields() {
		rawValue, present := raw[spec.Name]
		if !present {
			if spec.Required() {
				return nil, nil, &domain.MissingFieldError{Field: spec.Name}
			}
			rawValue = spec.Default
		}

		value, err := domain.CoerceValue(spec, rawValue)
		if err != nil {
			return nil, nil, &domain.TypeCoercionError{Field: spec.Name, Expected: spec.Type, Value: rawValue}
		}

		provided := present && !isEmpty(value)
		typed.Set(spec.Name, value, provided)
		vector[i] = normalizeField(spec, value)
	}

	return typed, vector, nil
}

func normalizeField(spec domain.FieldSpec, value any) float64 {
	switch spec.Type {
	case domain.FieldBool:
		if value.(bool) {
			return 1
		}
		return 0
	case domain.FieldOrdinal:
		v := float64(value.(int)) / float64(spec.MaxOrdinal)
		return clamp01(v)
	case domain.FieldInteger, domain.FieldFloat:
		v := numericValue(value)
		if spec.Scale > 0 {
			v /= spec.Scale
		}
		if spec.Clamp {
			return clamp01(v)
		}
		return v
	default:
		// String fields carry no numeric weight in the vector.
		return 0
	}
}

func numericValue(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func isEmpty(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
