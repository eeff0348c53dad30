package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-risk-server/internal/domain"
)

func TestBuildGauge_FixedBands(t *testing.T) {
	payload := BuildCharts(&DomainConfig{Name: "test", Schema: domain.MustSchema(
		domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Scale: 100, Clamp: true},
	)}, domain.NewTypedRecord(0), domain.FeatureVector{0.5}, 0.42, nil)

	gauge := payload.RiskGauge
	assert.InDelta(t, 42.0, gauge.Value, 1e-9)
	require.Len(t, gauge.Ranges, 5)

	wantColors := []string{"#22c55e", "#84cc16", "#eab308", "#f97316", "#ef4444"}
	for i, band := range gauge.Ranges {
		assert.Equal(t, float64(i*20), band.From)
		assert.Equal(t, float64(i*20+20), band.To)
		assert.Equal(t, wantColors[i], band.Color)
	}
}

func TestBuildFactorBars_TopEightScaledWithColors(t *testing.T) {
	factors := make([]domain.ContributingFactor, 10)
	for i := range factors {
		factors[i] = domain.ContributingFactor{
			Label:        fmt.Sprintf("factor %d", i),
			Contribution: 1.0 - float64(i)*0.1,
		}
	}

	bars := buildFactorBars(factors)
	require.Len(t, bars.Labels, 8)
	require.Len(t, bars.Data, 8)
	require.Len(t, bars.Colors, 8)

	assert.Equal(t, "factor 0", bars.Labels[0])
	assert.InDelta(t, 100.0, bars.Data[0], 1e-9)
	assert.Equal(t, "#ef4444", bars.Colors[0])
}

func TestContributionColor_Boundaries(t *testing.T) {
	tests := []struct {
		contribution float64
		want         string
	}{
		{0.1, "#22c55e"},
		{0.2, "#eab308"},
		{0.49, "#eab308"},
		{0.5, "#f97316"},
		{0.79, "#f97316"},
		{0.8, "#ef4444"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contributionColor(tt.contribution), "contribution %v", tt.contribution)
	}
}

func TestBuildRadar_AveragesAxisFields(t *testing.T) {
	cfg := &DomainConfig{
		Name: "test",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "a", Type: domain.FieldFloat, Scale: 1},
			domain.FieldSpec{Name: "b", Type: domain.FieldFloat, Scale: 1},
			domain.FieldSpec{Name: "c", Type: domain.FieldFloat, Scale: 1},
		),
		Radar: RadarSpec{Axes: []RadarAxis{
			{Label: "Pair", Fields: []string{"a", "b"}},
			{Label: "Single", Fields: []string{"c"}},
		}},
	}

	radar := buildRadar(cfg, domain.FeatureVector{0.2, 0.6, 1.8})
	require.Equal(t, []string{"Pair", "Single"}, radar.Labels)
	assert.InDelta(t, 40.0, radar.Data[0], 1e-9)
	assert.Equal(t, 100.0, radar.Data[1], "unclamped features clamp at the chart edge")
}

func TestBuildComparison_DeterministicReferenceCurve(t *testing.T) {
	typed := domain.NewTypedRecord(1)
	typed.Set("age", 70, true)

	first := buildComparison(typed, 0.8)
	second := buildComparison(typed, 0.8)
	assert.Equal(t, first, second)

	assert.InDelta(t, 80.0, first.UserRisk, 1e-9)
	assert.Equal(t, 75.0, first.AgeGroupAverage, "(70-20)*1.5")
	assert.Equal(t, float64(populationAverageRisk), first.PopulationAverage)
	assert.Equal(t, "70-79", first.AgeGroup)
}

func TestBuildComparison_ReferenceClampedToRange(t *testing.T) {
	young := domain.NewTypedRecord(1)
	young.Set("age", 18, true)
	assert.Equal(t, 10.0, buildComparison(young, 0.2).AgeGroupAverage)

	old := domain.NewTypedRecord(1)
	old.Set("age", 95, true)
	assert.Equal(t, 90.0, buildComparison(old, 0.2).AgeGroupAverage)
}

func TestComparisonAge_AlternateFieldNamesAndFallback(t *testing.T) {
	maternal := domain.NewTypedRecord(1)
	maternal.Set("maternal_age", 34, true)
	assert.Equal(t, "30-39", buildComparison(maternal, 0.5).AgeGroup)

	diagnosis := domain.NewTypedRecord(1)
	diagnosis.Set("age_at_diagnosis", 61, true)
	assert.Equal(t, "60-69", buildComparison(diagnosis, 0.5).AgeGroup)

	ageless := domain.NewTypedRecord(0)
	assert.Equal(t, "50-59", buildComparison(ageless, 0.5).AgeGroup)
}
