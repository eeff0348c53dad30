package domains

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
	"github.com/health-risk-server/internal/registry"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func buildRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(All(), testLogger())
	require.NoError(t, err, "every catalog entry must construct cleanly")
	return reg
}

// midpointRecord fills every schema field with its neutral midpoint
// value, so any domain can be assessed without knowing its semantics.
func midpointRecord(cfg *engine.DomainConfig) domain.RawRecord {
	record := domain.RawRecord{}
	for _, spec := range cfg.Schema.Fields() {
		switch spec.Type {
		case domain.FieldBool:
			record[spec.Name] = false
		case domain.FieldOrdinal:
			record[spec.Name] = float64(spec.MaxOrdinal / 2)
		case domain.FieldString:
			record[spec.Name] = "none"
		default:
			scale := spec.Scale
			if scale <= 0 {
				scale = 1
			}
			record[spec.Name] = scale * 0.5
		}
	}
	return record
}

func TestAll_CatalogComplete(t *testing.T) {
	reg := buildRegistry(t)
	assert.Equal(t, 23, reg.Len())

	names := reg.Names()
	assert.Equal(t, "heart_disease", names[0], "disease domains lead the catalog")
	assert.Contains(t, names, "sepsis")
	assert.Contains(t, names, "obesity_risk")
	assert.Contains(t, names, "cancer_recurrence")
}

func TestAll_EveryDomainAssessesMidpointRecord(t *testing.T) {
	reg := buildRegistry(t)

	for _, cfg := range All() {
		cfg := cfg
		t.Run(cfg.Name, func(t *testing.T) {
			p, err := reg.Get(cfg.Name)
			require.NoError(t, err)

			result, err := p.Assess(midpointRecord(cfg), true)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.RiskScore, 0.0)
			assert.LessOrEqual(t, result.RiskScore, 1.0)
			assert.True(t, result.RiskLevel.IsValid())
			assert.GreaterOrEqual(t, result.Confidence, 0.60)
			assert.LessOrEqual(t, result.Confidence, 0.95)
			assert.NotEmpty(t, result.Recommendations)
			require.NotNil(t, result.Charts)
			assert.Len(t, result.Charts.RiskGauge.Ranges, 5)
			assert.NotEmpty(t, result.Charts.Radar.Labels, "every domain declares radar axes")
			assert.Empty(t, result.AnalysisError)
		})
	}
}

func TestHeartDisease_HighRiskProfile(t *testing.T) {
	reg := buildRegistry(t)
	p, err := reg.Get("heart_disease")
	require.NoError(t, err)

	result, err := p.Assess(domain.RawRecord{
		"age":         70.0,
		"cholesterol": 260.0,
		"systolic_bp": 150.0,
		"smoking":     true,
		"diabetes":    true,
	}, true)
	require.NoError(t, err)

	// Term contributions sum to 1.10 and clamp at 1.0.
	assert.Equal(t, 1.0, result.RiskScore)
	assert.Equal(t, domain.RiskVeryHigh, result.RiskLevel)

	assert.Contains(t, result.Recommendations,
		"Quit smoking: enroll in a smoking cessation program and avoid all tobacco products")
	assert.Contains(t, result.Recommendations, "Urgent medical consultation recommended")

	require.NotNil(t, result.Analysis)
	assert.Contains(t, result.Analysis.ContributingFactors,
		"Advanced age (>65 years) significantly increases cardiovascular risk")
	assert.Equal(t, "High Stage 1 (requires intervention)", result.Analysis.HealthMetrics["Blood Pressure"])

	assert.Equal(t, "70-79", result.Charts.Comparison.AgeGroup)
	assert.Equal(t, 75.0, result.Charts.Comparison.AgeGroupAverage)
}

func TestObesityRisk_LowRiskProfile(t *testing.T) {
	reg := buildRegistry(t)
	p, err := reg.Get("obesity_risk")
	require.NoError(t, err)

	result, err := p.Assess(domain.RawRecord{
		"bmi":                 22.0,
		"sedentary_hours":     2.0,
		"activity_level":      3.0,
		"sleep_hours":         7.0,
		"fast_food_frequency": 1.0,
		"water_intake":        2.0,
	}, true)
	require.NoError(t, err)

	// Only the protective activity term fires; the sum clamps at zero.
	assert.Equal(t, 0.0, result.RiskScore)
	assert.Equal(t, domain.RiskLow, result.RiskLevel)

	// Healthy readings near the scale ends still register as factors.
	require.Len(t, result.Factors, 3)
	assert.Equal(t, "fast_food_frequency", result.Factors[0].Field)
	assert.Equal(t, "sedentary_hours", result.Factors[1].Field)
	assert.Equal(t, "activity_level", result.Factors[2].Field)

	assert.Contains(t, result.Recommendations, "Maintain your current healthy lifestyle")

	require.NotNil(t, result.Analysis)
	assert.Equal(t, "Normal weight", result.Analysis.HealthMetrics["BMI Category"])
	assert.Empty(t, result.Analysis.ContributingFactors)
}

func TestHospitalReadmission_AnalyzeUnsupported(t *testing.T) {
	reg := buildRegistry(t)
	p, err := reg.Get("hospital_readmission")
	require.NoError(t, err)
	assert.False(t, p.SupportsAnalysis())

	cfg := findConfig(t, "hospital_readmission")
	_, err = p.Analyze(midpointRecord(cfg))
	var unsupported *domain.AnalysisUnsupportedError
	require.ErrorAs(t, err, &unsupported)

	// Assess still works; the analysis section is simply absent.
	result, err := p.Assess(midpointRecord(cfg), true)
	require.NoError(t, err)
	assert.Nil(t, result.Analysis)
	assert.Empty(t, result.AnalysisError)
}

func TestPregnancyComplication_UsesMaternalAgeForComparison(t *testing.T) {
	reg := buildRegistry(t)
	p, err := reg.Get("pregnancy_complication")
	require.NoError(t, err)

	record := midpointRecord(findConfig(t, "pregnancy_complication"))
	record["maternal_age"] = 34.0

	result, err := p.Assess(record, false)
	require.NoError(t, err)
	assert.Equal(t, "30-39", result.Charts.Comparison.AgeGroup)
}

func TestFallbackDomains_DeterministicScores(t *testing.T) {
	reg := buildRegistry(t)

	for _, name := range []string{"parkinson", "cancer_recurrence"} {
		t.Run(name, func(t *testing.T) {
			p, err := reg.Get(name)
			require.NoError(t, err)

			record := midpointRecord(findConfig(t, name))
			first, err := p.Assess(record, false)
			require.NoError(t, err)
			second, err := p.Assess(record, false)
			require.NoError(t, err)

			assert.Equal(t, first.RiskScore, second.RiskScore)
			assert.GreaterOrEqual(t, first.RiskScore, 0.0)
			assert.LessOrEqual(t, first.RiskScore, 1.0)
		})
	}
}

func findConfig(t *testing.T, name string) *engine.DomainConfig {
	t.Helper()
	for _, cfg := range All() {
		if cfg.Name == name {
			return cfg
		}
	}
	t.Fatalf("domain %q not in catalog", name)
	return nil
}
