package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-risk-server/internal/domain"
)

func TestRuleScorer_SumsAndClamps(t *testing.T) {
	schema := domain.MustSchema(
		domain.FieldSpec{Name: "a", Type: domain.FieldFloat, Scale: 1, Clamp: true},
		domain.FieldSpec{Name: "b", Type: domain.FieldFloat, Scale: 1, Clamp: true},
	)
	rules := &ScoringRules{Terms: []ScoringTerm{
		{Field: "a", Contribution: Steps(Step{At: 0.5, Add: 0.7})},
		{Field: "b", Contribution: Steps(Step{At: 0.5, Add: 0.7})},
	}}

	scorer, err := NewRuleScorer("test", rules, schema)
	require.NoError(t, err)

	assert.Equal(t, 1.0, scorer.Score(domain.FeatureVector{0.9, 0.9}), "sum above 1 clamps")
	assert.Equal(t, 0.7, scorer.Score(domain.FeatureVector{0.9, 0.1}))
	assert.Equal(t, 0.0, scorer.Score(domain.FeatureVector{0.1, 0.1}))
}

func TestNewRuleScorer_RejectsUnknownField(t *testing.T) {
	schema := domain.MustSchema(
		domain.FieldSpec{Name: "a", Type: domain.FieldFloat, Scale: 1},
	)
	rules := &ScoringRules{Terms: []ScoringTerm{
		{Field: "missing", Contribution: Steps(Step{At: 0.5, Add: 0.1})},
	}}

	_, err := NewRuleScorer("test", rules, schema)
	var cfgErr *domain.ScoringConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "missing", cfgErr.Field)
}

func TestNewRuleScorer_RejectsNilContribution(t *testing.T) {
	schema := domain.MustSchema(
		domain.FieldSpec{Name: "a", Type: domain.FieldFloat, Scale: 1},
	)
	rules := &ScoringRules{Terms: []ScoringTerm{{Field: "a"}}}

	_, err := NewRuleScorer("test", rules, schema)
	var cfgErr *domain.ScoringConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRuleScorer_DuplicateFieldTermsAreAdditive(t *testing.T) {
	// U-shaped risks declare two terms on the same field.
	schema := domain.MustSchema(
		domain.FieldSpec{Name: "temperature", Type: domain.FieldFloat, Scale: 1},
	)
	rules := &ScoringRules{Terms: []ScoringTerm{
		{Field: "temperature", Contribution: Steps(Step{At: 0.8, Add: 0.2})},
		{Field: "temperature", Contribution: Below(0.3, 0.25)},
	}}

	scorer, err := NewRuleScorer("test", rules, schema)
	require.NoError(t, err)

	assert.Equal(t, 0.2, scorer.Score(domain.FeatureVector{0.9}))
	assert.Equal(t, 0.25, scorer.Score(domain.FeatureVector{0.1}))
	assert.Equal(t, 0.0, scorer.Score(domain.FeatureVector{0.5}))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-0.3))
	assert.Equal(t, 1.0, ClampScore(1.7))
	assert.Equal(t, 0.42, ClampScore(0.42))
	assert.Equal(t, 0.0, ClampScore(math.NaN()))
}

func TestCombinators(t *testing.T) {
	steps := Steps(Step{At: 0.4, Add: 0.1}, Step{At: 0.7, Add: 0.3})
	assert.Equal(t, 0.0, steps(0.39))
	assert.Equal(t, 0.1, steps(0.4))
	assert.Equal(t, 0.1, steps(0.69))
	assert.Equal(t, 0.3, steps(0.7), "highest reached threshold wins")

	scaled := Scaled(0.5, 0.2)
	assert.InDelta(t, 0.15, scaled(0.3), 1e-9)
	assert.Equal(t, 0.2, scaled(0.9), "capped at max")
	assert.Equal(t, 0.0, scaled(-0.1))

	whenSet := WhenSet(0.2)
	assert.Equal(t, 0.2, whenSet(1.0))
	assert.Equal(t, 0.0, whenSet(0.0))

	protective := Protective(0.7, 0.1)
	assert.Equal(t, -0.1, protective(0.75))
	assert.Equal(t, 0.0, protective(0.5))

	below := Below(0.5, 0.1)
	assert.Equal(t, 0.1, below(0.49))
	assert.Equal(t, 0.0, below(0.5))
}

func TestSharedFallback_DeterministicAndBounded(t *testing.T) {
	est := SharedFallback()
	require.Same(t, est, SharedFallback(), "singleton")

	vector := domain.FeatureVector{0.9, 0.1, 0.7, 0.3, 0.5, 0.8}
	first := est.Score(vector)
	assert.Equal(t, first, est.Score(vector), "same vector, same score")
	assert.GreaterOrEqual(t, first, 0.0)
	assert.LessOrEqual(t, first, 1.0)
}

func TestFallbackEstimator_WideVectorUsesFittedDims(t *testing.T) {
	est := SharedFallback()
	wide := make(domain.FeatureVector, 100)
	for i := range wide {
		wide[i] = 0.5
	}
	score := est.Score(wide)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}
