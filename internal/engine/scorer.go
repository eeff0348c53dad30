package engine

import (
	"math"

	"github.com/health-risk-server/internal/domain"
)

// Scorer produces a bounded composite risk score from a feature vector.
// Two implementations exist: the domain-authored RuleScorer and the
// generic fallback estimator. A domain formula is never silently
// replaced by the fallback.
type Scorer interface {
	Score(vector domain.FeatureVector) float64
}

// RuleScorer evaluates a domain's explicit scoring table. Field names
// are resolved to vector indexes once at construction; a term naming a
// field the schema does not declare is a configuration defect and fails
// construction.
type RuleScorer struct {
	terms []resolvedTerm
}

type resolvedTerm struct {
	index        int
	contribution func(float64) float64
}

// NewRuleScorer resolves scoring rules against a schema.
func NewRuleScorer(domainName string, rules *ScoringRules, schema *domain.SchemaEntry) (*RuleScorer, error) {
	terms := make([]resolvedTerm, 0, len(rules.Terms))
	for _, t := range rules.Terms {
		_, idx, ok := schema.Lookup(t.Field)
		if !ok {
			return nil, &domain.ScoringConfigurationError{
				Domain: domainName,
				Field:  t.Field,
				Reason: "scoring rule references a field missing from the schema",
			}
		}
		if t.Contribution == nil {
			return nil, &domain.ScoringConfigurationError{
				Domain: domainName,
				Field:  t.Field,
				Reason: "scoring rule has no contribution function",
			}
		}
		terms = append(terms, resolvedTerm{index: idx, contribution: t.Contribution})
	}
	return &RuleScorer{terms: terms}, nil
}

// Score sums the term contributions and clamps to [0,1]. Clamping is
// always the final step; the result is never NaN.
func (s *RuleScorer) Score(vector domain.FeatureVector) float64 {
	total := 0.0
	for _, t := range s.terms {
		total += t.contribution(vector[t.index])
	}
	return ClampScore(total)
}

// ClampScore bounds a composite score to [0,1] and flattens NaN to 0.
func ClampScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
