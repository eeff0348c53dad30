package domain

// ContributingFactor is one input field identified as materially driving
// the risk score. Factors are created fresh per assessment, ranked by
// contribution and truncated; they are never persisted.
type ContributingFactor struct {
	Field           string   `json:"field"`
	Label           string   `json:"label"`
	Value           any      `json:"value"`
	NormalizedValue float64  `json:"normalized_value"`
	Contribution    float64  `json:"contribution_score"`
	Severity        Severity `json:"severity"`
	Explanation     string   `json:"explanation"`
	Remediation     string   `json:"remediation,omitempty"`
}

// GaugeBand is one colored range of the risk gauge.
type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// Gauge is the 0-100 risk dial with its five fixed bands.
type Gauge struct {
	Value  float64     `json:"value"`
	Ranges []GaugeBand `json:"ranges"`
}

// FactorBars is the bar series of the top contributing factors, as
// contribution percentages.
type FactorBars struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// RadarSeries is the domain-specific radar chart: axis labels with 0-100
// values derived from the typed record.
type RadarSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// PopulationComparison positions the caller's risk against a fixed
// reference curve. It is fully deterministic: the same record always
// yields the same comparison.
type PopulationComparison struct {
	UserRisk          float64 `json:"user_risk"`
	AgeGroupAverage   float64 `json:"age_group_average"`
	PopulationAverage float64 `json:"population_average"`
	AgeGroup          string  `json:"age_group"`
}

// VisualizationPayload is the chart-ready view of an assessment.
type VisualizationPayload struct {
	RiskGauge  Gauge                `json:"risk_gauge"`
	FactorBars FactorBars           `json:"risk_factors_chart"`
	Radar      RadarSeries          `json:"health_metrics"`
	Comparison PopulationComparison `json:"comparison_data"`
}

// DetailedAnalysis is the optional enhancement block produced by a
// domain's analysis hooks. A failure here never invalidates the base
// assessment; it surfaces as AnalysisError on the result instead.
type DetailedAnalysis struct {
	ContributingFactors []string          `json:"contributing_factors"`
	HealthMetrics       map[string]string `json:"health_metrics"`
	LifestyleImpact     string            `json:"lifestyle_impact"`
}

// AssessmentResult is the terminal, immutable output of one pipeline
// invocation. External renderers depend on this field set; treat its
// shape as a compatibility contract.
type AssessmentResult struct {
	Domain          string                `json:"predictor_type"`
	RiskScore       float64               `json:"risk_score"`
	RiskLevel       RiskLevel             `json:"risk_level"`
	Confidence      float64               `json:"confidence"`
	Factors         []ContributingFactor  `json:"risk_factors"`
	Recommendations []string              `json:"recommendations"`
	Charts          *VisualizationPayload `json:"chart_data,omitempty"`
	Explanation     string                `json:"explanation"`
	Analysis        *DetailedAnalysis     `json:"detailed_analysis,omitempty"`
	AnalysisError   string                `json:"analysis_error,omitempty"`
}

// DomainInfo is the catalog entry returned by the domain listing.
type DomainInfo struct {
	Name           string            `json:"name"`
	DisplayName    string            `json:"display_name"`
	Description    string            `json:"description"`
	RequiredFields map[string]string `json:"required_fields"`
}

// SchemaInfo is the full field contract of one domain.
type SchemaInfo struct {
	Name                   string            `json:"predictor_type"`
	DisplayName            string            `json:"name"`
	Description            string            `json:"description"`
	RequiredFields         map[string]string `json:"required_fields"`
	FieldDescriptions      map[string]string `json:"field_descriptions"`
	SupportsFactorAnalysis bool              `json:"supports_enhanced_analysis"`
}
