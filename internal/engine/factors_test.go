package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-risk-server/internal/domain"
)

func factorTestConfig(t *testing.T) *DomainConfig {
	t.Helper()
	return &DomainConfig{
		Name: "test_domain",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "first", Type: domain.FieldFloat, Scale: 1, Description: "first marker"},
			domain.FieldSpec{Name: "second", Type: domain.FieldFloat, Scale: 1, Description: "second marker"},
			domain.FieldSpec{Name: "third", Type: domain.FieldFloat, Scale: 1, Description: "third marker"},
		),
		Weights: map[string]float64{
			"first":  0.8,
			"second": 0.8,
		},
		Explanations: map[string]string{
			"first": "Reading of %v is outside the expected range.",
		},
		Remediations: map[string]string{
			"first": "Bring the first marker back into range.",
		},
	}
}

func factorTestRecord(values map[string]any) *domain.TypedRecord {
	r := domain.NewTypedRecord(len(values))
	for name, v := range values {
		r.Set(name, v, true)
	}
	return r
}

func TestRankFactors_OrdersByContributionDescending(t *testing.T) {
	cfg := factorTestConfig(t)
	typed := factorTestRecord(map[string]any{"first": 0.9, "second": 1.0, "third": 1.0})

	// Contributions: first |0.9-0.5|*2*0.8 = 0.64, second 0.8, third (default
	// weight 0.5) 0.5.
	factors := RankFactors(cfg, typed, domain.FeatureVector{0.9, 1.0, 1.0})
	require.Len(t, factors, 3)
	assert.Equal(t, "second", factors[0].Field)
	assert.Equal(t, "first", factors[1].Field)
	assert.Equal(t, "third", factors[2].Field)
	assert.InDelta(t, 0.8, factors[0].Contribution, 1e-9)
	assert.InDelta(t, 0.64, factors[1].Contribution, 1e-9)
	assert.InDelta(t, 0.5, factors[2].Contribution, 1e-9)
}

func TestRankFactors_TiesBreakBySchemaOrder(t *testing.T) {
	cfg := factorTestConfig(t)
	typed := factorTestRecord(map[string]any{"first": 1.0, "second": 1.0, "third": 0.5})

	factors := RankFactors(cfg, typed, domain.FeatureVector{1.0, 1.0, 0.5})
	require.Len(t, factors, 2)
	assert.Equal(t, "first", factors[0].Field)
	assert.Equal(t, "second", factors[1].Field)
}

func TestRankFactors_FiltersInsignificantContributions(t *testing.T) {
	cfg := factorTestConfig(t)
	typed := factorTestRecord(map[string]any{"first": 0.55, "second": 0.5, "third": 0.6})

	// first: 0.1*0.8 = 0.08, second: 0, third: 0.2*0.5 = 0.1 — all at or
	// below the significance threshold.
	factors := RankFactors(cfg, typed, domain.FeatureVector{0.55, 0.5, 0.6})
	assert.Empty(t, factors)
}

func TestRankFactors_LowValuesContributeToo(t *testing.T) {
	cfg := factorTestConfig(t)
	typed := factorTestRecord(map[string]any{"first": 0.0, "second": 0.5, "third": 0.5})

	// Distance from the 0.5 midpoint counts in both directions.
	factors := RankFactors(cfg, typed, domain.FeatureVector{0.0, 0.5, 0.5})
	require.Len(t, factors, 1)
	assert.Equal(t, "first", factors[0].Field)
	assert.InDelta(t, 0.8, factors[0].Contribution, 1e-9)
}

func TestRankFactors_CapsAtTen(t *testing.T) {
	specs := make([]domain.FieldSpec, 14)
	vector := make(domain.FeatureVector, 14)
	typed := domain.NewTypedRecord(14)
	for i := range specs {
		name := fmt.Sprintf("field_%02d", i)
		specs[i] = domain.FieldSpec{Name: name, Type: domain.FieldFloat, Scale: 1, Description: name}
		vector[i] = 1.0
		typed.Set(name, 1.0, true)
	}
	cfg := &DomainConfig{Name: "wide", Schema: domain.MustSchema(specs...)}

	factors := RankFactors(cfg, typed, vector)
	assert.Len(t, factors, 10)
	assert.Equal(t, "field_00", factors[0].Field, "ties keep schema order after truncation")
	assert.Equal(t, "field_09", factors[9].Field)
}

func TestRankFactors_PopulatesTextAndSeverity(t *testing.T) {
	cfg := factorTestConfig(t)
	typed := factorTestRecord(map[string]any{"first": 1.0, "second": 0.8, "third": 0.5})

	factors := RankFactors(cfg, typed, domain.FeatureVector{1.0, 0.8, 0.5})
	require.Len(t, factors, 2)

	first := factors[0]
	assert.Equal(t, "first marker", first.Label)
	assert.Equal(t, domain.SeverityCritical, first.Severity)
	assert.Equal(t, "Reading of 1 is outside the expected range.", first.Explanation)
	assert.Equal(t, "Bring the first marker back into range.", first.Remediation)

	second := factors[1]
	assert.InDelta(t, 0.48, second.Contribution, 1e-9)
	assert.Equal(t, domain.SeverityModerate, second.Severity)
	assert.Equal(t, "The value 0.8 for second marker contributes to the overall risk assessment.", second.Explanation)
	assert.Empty(t, second.Remediation)
}
