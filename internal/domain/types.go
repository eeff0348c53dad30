// Package domain contains the core entities shared by every assessment
// domain: field schemas, typed records, feature vectors, risk levels and
// the immutable assessment result callers receive.
//
// The risk-level thresholds and factor severity buckets are fixed
// system-wide so that a "High" cardiac assessment means the same thing as
// a "High" renal one.
package domain

// RiskLevel is the ordinal classification of a composite risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// IsValid reports whether the level is one of the four known levels.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLow, RiskModerate, RiskHigh, RiskVeryHigh:
		return true
	default:
		return false
	}
}

// String returns the display form of the level.
func (l RiskLevel) String() string {
	return string(l)
}

// Rank returns the ordinal position of the level, Low being 0. Unknown
// levels rank above VeryHigh so they are never silently downgraded.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskVeryHigh:
		return 3
	default:
		return 4
	}
}

// Severity buckets a single contributing factor by its contribution
// magnitude. The bucket boundaries (0.2 / 0.5 / 0.8) are shared by the
// ranking stage and the explanatory text.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

// IsValid reports whether the severity is a known bucket.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	default:
		return false
	}
}

func (s Severity) String() string {
	return string(s)
}

// SeverityForContribution buckets a contribution magnitude.
func SeverityForContribution(contribution float64) Severity {
	switch {
	case contribution < 0.2:
		return SeverityMild
	case contribution < 0.5:
		return SeverityModerate
	case contribution < 0.8:
		return SeveritySevere
	default:
		return SeverityCritical
	}
}

// FieldType is the declared primitive type of a schema field.
type FieldType string

const (
	FieldInteger FieldType = "int"
	FieldFloat   FieldType = "float"
	FieldBool    FieldType = "bool"
	FieldString  FieldType = "string"
	FieldOrdinal FieldType = "ordinal"
)

// IsValid reports whether the field type is supported by the pipeline.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldInteger, FieldFloat, FieldBool, FieldString, FieldOrdinal:
		return true
	default:
		return false
	}
}

func (t FieldType) String() string {
	return string(t)
}
