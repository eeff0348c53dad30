package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-risk-server/internal/domain"
)

func TestComposeRecommendations_GenericAdviceFirst(t *testing.T) {
	cfg := &DomainConfig{Name: "test"}
	typed := domain.NewTypedRecord(0)

	recs := ComposeRecommendations(cfg, domain.RiskLow, 0.1, typed, nil)
	require.Len(t, recs, 4, "every level carries four generic items")
	assert.Equal(t, "Maintain your current healthy lifestyle", recs[0])
}

func TestComposeRecommendations_FactorRemediationsAfterGeneric(t *testing.T) {
	cfg := &DomainConfig{Name: "test"}
	typed := domain.NewTypedRecord(0)
	factors := []domain.ContributingFactor{
		{Field: "smoking", Label: "smoking status", Remediation: "Quit smoking now."},
		{Field: "bmi", Label: "body mass index"},
	}

	recs := ComposeRecommendations(cfg, domain.RiskModerate, 0.4, typed, factors)
	require.GreaterOrEqual(t, len(recs), 6)
	assert.Equal(t, "Quit smoking now.", recs[4])
	assert.Equal(t, "Address the body mass index to reduce risk.", recs[5], "fallback remediation names the label")
}

func TestComposeRecommendations_OnlyTopFiveFactorsAdvise(t *testing.T) {
	cfg := &DomainConfig{Name: "test"}
	typed := domain.NewTypedRecord(0)

	factors := make([]domain.ContributingFactor, 7)
	for i := range factors {
		factors[i] = domain.ContributingFactor{
			Field:       fmt.Sprintf("f%d", i),
			Label:       fmt.Sprintf("factor %d", i),
			Remediation: fmt.Sprintf("Fix factor %d.", i),
		}
	}

	recs := ComposeRecommendations(cfg, domain.RiskLow, 0.1, typed, factors)
	assert.Contains(t, recs, "Fix factor 4.")
	assert.NotContains(t, recs, "Fix factor 5.")
}

func TestComposeRecommendations_MonitoringOnlyAtHighAndAbove(t *testing.T) {
	cfg := &DomainConfig{Name: "test"}
	typed := domain.NewTypedRecord(0)
	monitoring := "Schedule regular follow-up appointments with your healthcare provider"

	assert.NotContains(t, ComposeRecommendations(cfg, domain.RiskLow, 0.1, typed, nil), monitoring)
	assert.NotContains(t, ComposeRecommendations(cfg, domain.RiskModerate, 0.4, typed, nil), monitoring)
	assert.Contains(t, ComposeRecommendations(cfg, domain.RiskHigh, 0.7, typed, nil), monitoring)
	assert.Contains(t, ComposeRecommendations(cfg, domain.RiskVeryHigh, 0.9, typed, nil), monitoring)
}

func TestComposeRecommendations_LifestyleRulesConditional(t *testing.T) {
	cfg := &DomainConfig{
		Name: "test",
		Lifestyle: []LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
				Advice: "Adopt a structured exercise routine",
			},
		},
	}
	typed := domain.NewTypedRecord(0)

	assert.Contains(t, ComposeRecommendations(cfg, domain.RiskHigh, 0.7, typed, nil), "Adopt a structured exercise routine")
	assert.NotContains(t, ComposeRecommendations(cfg, domain.RiskLow, 0.2, typed, nil), "Adopt a structured exercise routine")
}

func TestComposeRecommendations_DeduplicatesAndCaps(t *testing.T) {
	rules := make([]LifestyleRule, 20)
	for i := range rules {
		rules[i] = LifestyleRule{
			When:   func(_ *domain.TypedRecord, _ float64) bool { return true },
			Advice: fmt.Sprintf("Lifestyle advice %02d", i),
		}
	}
	// Duplicate of a generic High item must not appear twice.
	rules[0].Advice = "Implement significant lifestyle changes"

	cfg := &DomainConfig{Name: "test", Lifestyle: rules}
	typed := domain.NewTypedRecord(0)

	recs := ComposeRecommendations(cfg, domain.RiskHigh, 0.7, typed, nil)
	assert.Len(t, recs, 15)

	seen := make(map[string]int)
	for _, r := range recs {
		seen[r]++
	}
	for advice, count := range seen {
		assert.Equal(t, 1, count, "duplicate advice %q", advice)
	}
}
