package engine

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-risk-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func predictorTestConfig() *DomainConfig {
	return &DomainConfig{
		Name:        "cardio_test",
		DisplayName: "Cardiovascular Test",
		Description: "test configuration",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Scale: 100, Clamp: true, Description: "age"},
			domain.FieldSpec{Name: "systolic_bp", Type: domain.FieldFloat, Scale: 200, Clamp: true, Description: "systolic blood pressure"},
			domain.FieldSpec{Name: "smoking", Type: domain.FieldBool, Default: false, Description: "smoking status"},
		),
		Scoring: &ScoringRules{Terms: []ScoringTerm{
			{Field: "age", Contribution: Steps(Step{At: 0.45, Add: 0.15}, Step{At: 0.65, Add: 0.25})},
			{Field: "systolic_bp", Contribution: Steps(Step{At: 0.6, Add: 0.1}, Step{At: 0.7, Add: 0.2})},
			{Field: "smoking", Contribution: WhenSet(0.2)},
		}},
		Weights: map[string]float64{"age": 0.7, "systolic_bp": 0.8, "smoking": 0.9},
		Analysis: &AnalysisHooks{
			HealthMetrics: func(typed *domain.TypedRecord) (map[string]string, error) {
				return map[string]string{"Blood Pressure": "Elevated"}, nil
			},
		},
	}
}

func TestNewPredictor_RejectsEmptySchema(t *testing.T) {
	_, err := NewPredictor(&DomainConfig{Name: "empty"}, testLogger())
	var cfgErr *domain.ScoringConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewPredictor_RejectsConfigFieldsMissingFromSchema(t *testing.T) {
	base := func() *DomainConfig {
		cfg := predictorTestConfig()
		cfg.Analysis = nil
		return cfg
	}

	weights := base()
	weights.Weights["ghost"] = 0.5
	_, err := NewPredictor(weights, testLogger())
	assert.Error(t, err)

	explanations := base()
	explanations.Explanations = map[string]string{"ghost": "%v"}
	_, err = NewPredictor(explanations, testLogger())
	assert.Error(t, err)

	remediations := base()
	remediations.Remediations = map[string]string{"ghost": "fix it"}
	_, err = NewPredictor(remediations, testLogger())
	assert.Error(t, err)

	radar := base()
	radar.Radar = RadarSpec{Axes: []RadarAxis{{Label: "Axis", Fields: []string{"ghost"}}}}
	_, err = NewPredictor(radar, testLogger())
	assert.Error(t, err)
}

func TestPredictor_Assess_FullPipeline(t *testing.T) {
	p, err := NewPredictor(predictorTestConfig(), testLogger())
	require.NoError(t, err)

	result, err := p.Assess(domain.RawRecord{
		"age":         70.0,
		"systolic_bp": 150.0,
		"smoking":     true,
	}, true)
	require.NoError(t, err)

	// 0.25 (age 0.70) + 0.20 (bp 0.75) + 0.20 (smoking) = 0.65.
	assert.InDelta(t, 0.65, result.RiskScore, 1e-9)
	assert.Equal(t, domain.RiskHigh, result.RiskLevel)
	assert.GreaterOrEqual(t, result.Confidence, 0.60)
	assert.LessOrEqual(t, result.Confidence, 0.95)
	assert.NotEmpty(t, result.Factors)
	assert.NotEmpty(t, result.Recommendations)
	assert.NotNil(t, result.Charts)
	assert.Contains(t, result.Explanation, "cardiovascular test")
	assert.Contains(t, result.Explanation, "high risk level")

	require.NotNil(t, result.Analysis)
	assert.Equal(t, "Elevated", result.Analysis.HealthMetrics["Blood Pressure"])
	assert.Empty(t, result.AnalysisError)
}

func TestPredictor_Assess_RepeatedCallsByteIdentical(t *testing.T) {
	p, err := NewPredictor(predictorTestConfig(), testLogger())
	require.NoError(t, err)

	record := domain.RawRecord{"age": 55.0, "systolic_bp": 130.0, "smoking": false}

	first, err := p.Assess(record, true)
	require.NoError(t, err)
	second, err := p.Assess(record, true)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestPredictor_Assess_SkipsAnalysisWhenNotRequested(t *testing.T) {
	p, err := NewPredictor(predictorTestConfig(), testLogger())
	require.NoError(t, err)

	result, err := p.Assess(domain.RawRecord{"age": 40.0, "systolic_bp": 120.0}, false)
	require.NoError(t, err)
	assert.Nil(t, result.Analysis)
	assert.Empty(t, result.AnalysisError)
}

func TestPredictor_Assess_IsolatesAnalysisFailure(t *testing.T) {
	cfg := predictorTestConfig()
	cfg.Analysis = &AnalysisHooks{
		HealthMetrics: func(typed *domain.TypedRecord) (map[string]string, error) {
			return nil, errors.New("metrics unavailable")
		},
	}
	p, err := NewPredictor(cfg, testLogger())
	require.NoError(t, err)

	result, err := p.Assess(domain.RawRecord{"age": 70.0, "systolic_bp": 150.0}, true)
	require.NoError(t, err, "analysis failure must not fail the assessment")
	assert.Nil(t, result.Analysis)
	assert.Contains(t, result.AnalysisError, "metrics unavailable")
	assert.InDelta(t, 0.45, result.RiskScore, 1e-9, "base pipeline unaffected")
}

func TestPredictor_Assess_RecoversAnalysisPanic(t *testing.T) {
	cfg := predictorTestConfig()
	cfg.Analysis = &AnalysisHooks{
		LifestyleImpact: func(typed *domain.TypedRecord) (string, error) {
			panic("hook defect")
		},
	}
	p, err := NewPredictor(cfg, testLogger())
	require.NoError(t, err)

	result, err := p.Assess(domain.RawRecord{"age": 40.0, "systolic_bp": 120.0}, true)
	require.NoError(t, err)
	assert.Nil(t, result.Analysis)
	assert.Contains(t, result.AnalysisError, "hook defect")
}

func TestPredictor_Assess_RejectsInvalidInput(t *testing.T) {
	p, err := NewPredictor(predictorTestConfig(), testLogger())
	require.NoError(t, err)

	_, err = p.Assess(domain.RawRecord{"systolic_bp": 120.0}, false)
	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "age", missing.Field)
}

func TestPredictor_Analyze_FillsGenericDefaults(t *testing.T) {
	p, err := NewPredictor(predictorTestConfig(), testLogger())
	require.NoError(t, err)

	analysis, err := p.Analyze(domain.RawRecord{"age": 40.0, "systolic_bp": 120.0})
	require.NoError(t, err)

	assert.NotNil(t, analysis.ContributingFactors, "nil hook yields an empty list, not null")
	assert.Empty(t, analysis.ContributingFactors)
	assert.Equal(t, "Lifestyle factors play a significant role in risk development.", analysis.LifestyleImpact)
	assert.Equal(t, map[string]string{"Blood Pressure": "Elevated"}, analysis.HealthMetrics)
}

func TestPredictor_Analyze_UnsupportedDomain(t *testing.T) {
	cfg := predictorTestConfig()
	cfg.Analysis = nil
	p, err := NewPredictor(cfg, testLogger())
	require.NoError(t, err)

	_, err = p.Analyze(domain.RawRecord{"age": 40.0, "systolic_bp": 120.0})
	var unsupported *domain.AnalysisUnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "cardio_test", unsupported.Domain)
}

func TestPredictor_SchemaInfo(t *testing.T) {
	p, err := NewPredictor(predictorTestConfig(), testLogger())
	require.NoError(t, err)

	info := p.SchemaInfo()
	assert.Equal(t, "cardio_test", info.Name)
	assert.True(t, info.SupportsFactorAnalysis)
	assert.Equal(t, "int", info.RequiredFields["age"])
	assert.Equal(t, "bool", info.RequiredFields["smoking"])
}
