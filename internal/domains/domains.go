// Package domains declares the assessment domain catalog: per-domain
// schemas, scoring rules, factor weights, explanation and remediation
// text, lifestyle rules, radar specs and analysis hooks. Everything here
// is static configuration consumed by the engine; the package holds no
// behavior beyond small hook builders.
package domains

import (
	"fmt"
	"strings"

	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
)

// All returns every domain configuration in catalog order. The order is
// stable: it drives registry listing and therefore the public domain
// index.
func All() []*engine.DomainConfig {
	var configs []*engine.DomainConfig
	configs = append(configs, diseaseDomains()...)
	configs = append(configs, conditionDomains()...)
	configs = append(configs, lifestyleDomains()...)
	configs = append(configs, specializedDomains()...)
	return configs
}

// observation is one conditional finding surfaced by the detailed
// analysis: when the predicate holds for the record, the text is
// reported as a contributing factor.
type observation struct {
	when func(*domain.TypedRecord) bool
	text string
}

// observationHooks builds analysis hooks from a list of observations, a
// metrics derivation and a lifestyle summary. Nil metrics or impact fall
// back to the engine's generic derivations.
func observationHooks(observations []observation, metrics func(*domain.TypedRecord) (map[string]string, error), impact func(*domain.TypedRecord) (string, error)) *engine.AnalysisHooks {
	return &engine.AnalysisHooks{
		ContributingFactors: func(typed *domain.TypedRecord) ([]string, error) {
			factors := []string{}
			for _, o := range observations {
				if o.when(typed) {
					factors = append(factors, o.text)
				}
			}
			return factors, nil
		},
		HealthMetrics:   metrics,
		LifestyleImpact: impact,
	}
}

// above returns a predicate testing a numeric field against a threshold.
func above(field string, threshold float64) func(*domain.TypedRecord) bool {
	return func(typed *domain.TypedRecord) bool {
		return typed.Float(field) > threshold
	}
}

func below(field string, threshold float64) func(*domain.TypedRecord) bool {
	return func(typed *domain.TypedRecord) bool {
		return typed.Float(field) < threshold
	}
}

func isSet(field string) func(*domain.TypedRecord) bool {
	return func(typed *domain.TypedRecord) bool {
		return typed.Bool(field)
	}
}

// impactSummary builds a lifestyle-impact derivation that names the
// triggered concerns, or returns the all-clear text when none apply.
func impactSummary(concerns []observation, allClear string) func(*domain.TypedRecord) (string, error) {
	return func(typed *domain.TypedRecord) (string, error) {
		var hits []string
		for _, c := range concerns {
			if c.when(typed) {
				hits = append(hits, c.text)
			}
		}
		if len(hits) == 0 {
			return allClear, nil
		}
		return fmt.Sprintf("Your lifestyle significantly impacts this risk through: %s. Comprehensive lifestyle modifications including diet, exercise, stress management, and regular monitoring are essential for risk reduction.", strings.Join(hits, ", ")), nil
	}
}

// elevatedRiskLifestyle is the generic advice block most domains attach
// once the composite score passes the midpoint.
var elevatedRiskLifestyle = []engine.LifestyleRule{
	{
		When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
		Advice: "Implement a heart-healthy diet rich in fruits and vegetables",
	},
	{
		When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
		Advice: "Establish a regular exercise routine (150 minutes/week moderate activity)",
	},
	{
		When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
		Advice: "Practice stress management techniques like meditation or yoga",
	},
}
