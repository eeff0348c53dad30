package engine

import (
	"fmt"

	"github.com/health-risk-server/internal/domain"
)

// maxBarFactors caps the factor bar series.
const maxBarFactors = 8

const populationAverageRisk = 35

// gaugeBands are the fixed five bands of the risk dial. Band boundaries
// and colors are part of the rendering contract with report exports.
var gaugeBands = []domain.GaugeBand{
	{From: 0, To: 20, Color: "#22c55e", Label: "Low Risk"},
	{From: 20, To: 40, Color: "#84cc16", Label: "Mild Risk"},
	{From: 40, To: 60, Color: "#eab308", Label: "Moderate Risk"},
	{From: 60, To: 80, Color: "#f97316", Label: "High Risk"},
	{From: 80, To: 100, Color: "#ef4444", Label: "Very High Risk"},
}

// BuildCharts assembles the chart-ready payload: gauge, factor bars,
// domain radar and population comparison. Every transform here is
// deterministic; the same record and score always produce the same
// payload.
func BuildCharts(cfg *DomainConfig, typed *domain.TypedRecord, vector domain.FeatureVector, score float64, factors []domain.ContributingFactor) *domain.VisualizationPayload {
	return &domain.VisualizationPayload{
		RiskGauge:  buildGauge(score),
		FactorBars: buildFactorBars(factors),
		Radar:      buildRadar(cfg, vector),
		Comparison: buildComparison(typed, score),
	}
}

func buildGauge(score float64) domain.Gauge {
	ranges := make([]domain.GaugeBand, len(gaugeBands))
	copy(ranges, gaugeBands)
	return domain.Gauge{
		Value:  score * 100,
		Ranges: ranges,
	}
}

func buildFactorBars(factors []domain.ContributingFactor) domain.FactorBars {
	top := factors
	if len(top) > maxBarFactors {
		top = top[:maxBarFactors]
	}

	bars := domain.FactorBars{
		Labels: make([]string, len(top)),
		Data:   make([]float64, len(top)),
		Colors: make([]string, len(top)),
	}
	for i, f := range top {
		bars.Labels[i] = f.Label
		bars.Data[i] = f.Contribution * 100
		bars.Colors[i] = contributionColor(f.Contribution)
	}
	return bars
}

func contributionColor(contribution float64) string {
	switch {
	case contribution < 0.2:
		return "#22c55e"
	case contribution < 0.5:
		return "#eab308"
	case contribution < 0.8:
		return "#f97316"
	default:
		return "#ef4444"
	}
}

// buildRadar averages each axis's normalized fields and scales to
// 0-100. Axis field names are validated against the schema at predictor
// construction, so lookups here cannot miss.
func buildRadar(cfg *DomainConfig, vector domain.FeatureVector) domain.RadarSeries {
	radar := domain.RadarSeries{
		Labels: make([]string, len(cfg.Radar.Axes)),
		Data:   make([]float64, len(cfg.Radar.Axes)),
	}
	for i, axis := range cfg.Radar.Axes {
		radar.Labels[i] = axis.Label

		sum := 0.0
		for _, field := range axis.Fields {
			_, idx, _ := cfg.Schema.Lookup(field)
			sum += vector[idx]
		}
		value := 0.0
		if len(axis.Fields) > 0 {
			value = sum / float64(len(axis.Fields)) * 100
		}
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		radar.Data[i] = value
	}
	return radar
}

// buildComparison positions the caller against a fixed age-indexed
// reference curve. The curve replaces the noisy per-call figure the
// comparison originally used, so repeated assessments stay
// byte-identical.
func buildComparison(typed *domain.TypedRecord, score float64) domain.PopulationComparison {
	age := comparisonAge(typed)
	decade := (age / 10) * 10

	reference := float64(age-20) * 1.5
	if reference < 10 {
		reference = 10
	}
	if reference > 90 {
		reference = 90
	}

	return domain.PopulationComparison{
		UserRisk:          score * 100,
		AgeGroupAverage:   reference,
		PopulationAverage: populationAverageRisk,
		AgeGroup:          fmt.Sprintf("%d-%d", decade, decade+9),
	}
}

// comparisonAge finds the record's age under any of the field names
// domains use for it, defaulting to 50 when the schema has none.
func comparisonAge(typed *domain.TypedRecord) int {
	for _, name := range []string{"age", "maternal_age", "age_at_diagnosis"} {
		if typed.Provided(name) {
			return int(typed.Float(name))
		}
	}
	return 50
}
