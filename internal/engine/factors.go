package engine

import (
	"fmt"
	"sort"

	"github.com/health-risk-server/internal/domain"
)

const (
	// defaultFactorWeight applies to fields the domain assigns no
	// explicit weight.
	defaultFactorWeight = 0.5

	// significanceThreshold filters out factors whose weighted
	// contribution is too small to explain anything. Factors at or below
	// it never appear in results.
	significanceThreshold = 0.1

	// maxFactors caps the ranked list.
	maxFactors = 10
)

// RankFactors computes every field's weighted contribution magnitude,
// drops insignificant ones, and returns the top factors ordered by
// contribution. Ties break by schema declaration order, so ranking is
// deterministic regardless of sort internals.
func RankFactors(cfg *DomainConfig, typed *domain.TypedRecord, vector domain.FeatureVector) []domain.ContributingFactor {
	type candidate struct {
		factor domain.ContributingFactor
		index  int
	}

	candidates := make([]candidate, 0, cfg.Schema.Len())
	for i, spec := range cfg.Schema.Fields() {
		weight := defaultFactorWeight
		if w, ok := cfg.Weights[spec.Name]; ok {
			weight = w
		}

		contribution := distanceFromMidpoint(vector[i]) * weight
		if contribution <= significanceThreshold {
			continue
		}

		value := typed.Value(spec.Name)
		candidates = append(candidates, candidate{
			index: i,
			factor: domain.ContributingFactor{
				Field:           spec.Name,
				Label:           spec.Description,
				Value:           value,
				NormalizedValue: vector[i],
				Contribution:    contribution,
				Severity:        domain.SeverityForContribution(contribution),
				Explanation:     explainField(cfg, spec, value),
				Remediation:     cfg.Remediations[spec.Name],
			},
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].factor.Contribution != candidates[b].factor.Contribution {
			return candidates[a].factor.Contribution > candidates[b].factor.Contribution
		}
		return candidates[a].index < candidates[b].index
	})

	if len(candidates) > maxFactors {
		candidates = candidates[:maxFactors]
	}

	factors := make([]domain.ContributingFactor, len(candidates))
	for i, c := range candidates {
		factors[i] = c.factor
	}
	return factors
}

// distanceFromMidpoint measures how far a normalized value sits from the
// neutral 0.5 midpoint, scaled to [0,1] for values inside the unit range.
func distanceFromMidpoint(norm float64) float64 {
	d := norm - 0.5
	if d < 0 {
		d = -d
	}
	return d * 2
}

func explainField(cfg *DomainConfig, spec domain.FieldSpec, value any) string {
	if tpl, ok := cfg.Explanations[spec.Name]; ok {
		return fmt.Sprintf(tpl, value)
	}
	return fmt.Sprintf("The value %v for %s contributes to the overall risk assessment.", value, spec.Description)
}
