// Package engine implements the shared risk-assessment pipeline:
// validation/normalization, composite scoring, ordinal classification,
// contributing-factor ranking, confidence estimation, recommendation
// composition and visualization payload assembly.
//
// Every assessment domain is a DomainConfig — pure configuration data —
// executed by the same Predictor. Polymorphism is over configuration and
// override hooks, never over pipeline order.
package engine

import (
	"github.com/health-risk-server/internal/domain"
)

// ScoringTerm maps one named feature to its contribution function over
// the feature's normalized value.
type ScoringTerm struct {
	Field        string
	Contribution func(norm float64) float64
}

// ScoringRules is a domain-authored additive scoring formula: the sum of
// all term contributions, clamped to [0,1] by the scorer. A domain with
// no rules falls back to the generic synthetic estimator.
type ScoringRules struct {
	Terms []ScoringTerm
}

// Step is one threshold of a piecewise-constant contribution function.
type Step struct {
	At  float64
	Add float64
}

// Steps returns a contribution function that yields the Add of the
// highest threshold the normalized value has reached. Thresholds must be
// declared in ascending order.
func Steps(steps ...Step) func(float64) float64 {
	return func(v float64) float64 {
		add := 0.0
		for _, s := range steps {
			if v >= s.At {
				add = s.Add
			}
		}
		return add
	}
}

// Scaled returns a contribution proportional to the normalized value,
// capped at max.
func Scaled(mul, max float64) func(float64) float64 {
	return func(v float64) float64 {
		c := v * mul
		if c > max {
			return max
		}
		if c < 0 {
			return 0
		}
		return c
	}
}

// WhenSet returns a fixed contribution when a boolean feature is set.
func WhenSet(add float64) func(float64) float64 {
	return func(v float64) float64 {
		if v >= 0.5 {
			return add
		}
		return 0
	}
}

// Protective returns a negative contribution once the normalized value
// reaches the threshold, for features that reduce risk (activity,
// vaccination, treatment response).
func Protective(at, sub float64) func(float64) float64 {
	return func(v float64) float64 {
		if v >= at {
			return -sub
		}
		return 0
	}
}

// Below returns a fixed contribution when the normalized value falls
// under the threshold, for features where low readings are the risk
// (oxygen saturation, hemoglobin, sleep).
func Below(at, add float64) func(float64) float64 {
	return func(v float64) float64 {
		if v < at {
			return add
		}
		return 0
	}
}

// RadarAxis is one axis of the domain radar chart: a label and the
// schema fields averaged into its 0-100 value.
type RadarAxis struct {
	Label  string
	Fields []string
}

// RadarSpec declares a domain's radar chart axes.
type RadarSpec struct {
	Axes []RadarAxis
}

// LifestyleRule appends one advice string when its condition holds for
// the assessed record.
type LifestyleRule struct {
	When   func(typed *domain.TypedRecord, score float64) bool
	Advice string
}

// AnalysisHooks are the optional detailed-analysis overrides of a
// domain. Individual nil hooks fall back to generic derivations; a
// domain with a nil AnalysisHooks pointer does not support analysis at
// all. All hooks take exactly the typed record.
type AnalysisHooks struct {
	ContributingFactors func(typed *domain.TypedRecord) ([]string, error)
	HealthMetrics       func(typed *domain.TypedRecord) (map[string]string, error)
	LifestyleImpact     func(typed *domain.TypedRecord) (string, error)
}

// DomainConfig binds one assessment domain: its schema, scoring rules,
// factor weights, explanation and remediation text, lifestyle advice,
// radar spec and analysis hooks. Configs are immutable after
// registration.
type DomainConfig struct {
	Name        string
	DisplayName string
	Description string

	Schema *domain.SchemaEntry

	// Scoring is the domain-authored formula; nil selects the fallback
	// estimator, which is non-clinical and only guarantees the pipeline
	// never fails for an unconfigured domain.
	Scoring *ScoringRules

	// Weights drive factor ranking; fields without an entry weigh 0.5.
	Weights map[string]float64

	// Explanations maps a field to a printf template receiving the raw
	// value. Fields without an entry get a generic sentence.
	Explanations map[string]string

	// Remediations maps a field to its factor-specific recommendation.
	Remediations map[string]string

	Lifestyle []LifestyleRule
	Radar     RadarSpec
	Analysis  *AnalysisHooks
}
