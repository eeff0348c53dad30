package engine

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/health-risk-server/internal/domain"
)

// Predictor is the per-domain composition root: one schema bound to the
// domain's scoring, explanation and analysis configuration, executing
// the pipeline stages in fixed order. A Predictor is immutable after
// construction and safe for concurrent use.
type Predictor struct {
	cfg    *DomainConfig
	scorer Scorer
	logger logrus.FieldLogger
}

// NewPredictor validates a domain configuration against its schema and
// binds the scorer. Any field referenced by the scoring rules, weight
// table, explanation templates, remediations or radar spec that the
// schema does not declare is a ScoringConfigurationError; callers treat
// it as fatal at startup.
func NewPredictor(cfg *DomainConfig, logger logrus.FieldLogger) (*Predictor, error) {
	if cfg.Schema == nil || cfg.Schema.Len() == 0 {
		return nil, &domain.ScoringConfigurationError{
			Domain: cfg.Name,
			Reason: "domain has no schema",
		}
	}

	for name := range cfg.Weights {
		if !cfg.Schema.Has(name) {
			return nil, configFieldError(cfg.Name, name, "weight table")
		}
	}
	for name := range cfg.Explanations {
		if !cfg.Schema.Has(name) {
			return nil, configFieldError(cfg.Name, name, "explanation templates")
		}
	}
	for name := range cfg.Remediations {
		if !cfg.Schema.Has(name) {
			return nil, configFieldError(cfg.Name, name, "remediation table")
		}
	}
	for _, axis := range cfg.Radar.Axes {
		for _, name := range axis.Fields {
			if !cfg.Schema.Has(name) {
				return nil, configFieldError(cfg.Name, name, "radar spec")
			}
		}
	}

	var scorer Scorer
	if cfg.Scoring != nil {
		rs, err := NewRuleScorer(cfg.Name, cfg.Scoring, cfg.Schema)
		if err != nil {
			return nil, err
		}
		scorer = rs
	} else {
		scorer = SharedFallback()
	}

	return &Predictor{
		cfg:    cfg,
		scorer: scorer,
		logger: logger.WithField("domain", cfg.Name),
	}, nil
}

func configFieldError(domainName, field, where string) error {
	return &domain.ScoringConfigurationError{
		Domain: domainName,
		Field:  field,
		Reason: where + " references a field missing from the schema",
	}
}

// Name returns the domain's registry key.
func (p *Predictor) Name() string {
	return p.cfg.Name
}

// SupportsAnalysis reports whether the domain has detailed-analysis
// hooks.
func (p *Predictor) SupportsAnalysis() bool {
	return p.cfg.Analysis != nil
}

// Assess runs the full pipeline over a raw record and returns one
// immutable result. Input validation failures return an error; a
// failing analysis stage is isolated into the result's analysis_error
// field instead of failing the assessment.
func (p *Predictor) Assess(raw domain.RawRecord, includeAnalysis bool) (*domain.AssessmentResult, error) {
	typed, vector, err := ValidateAndNormalize(raw, p.cfg.Schema)
	if err != nil {
		return nil, err
	}

	score := p.scorer.Score(vector)
	level := Classify(score)
	factors := RankFactors(p.cfg, typed, vector)
	confidence := EstimateConfidence(typed, p.cfg.Schema, score, factors)
	recommendations := ComposeRecommendations(p.cfg, level, score, typed, factors)
	charts := BuildCharts(p.cfg, typed, vector, score, factors)

	result := &domain.AssessmentResult{
		Domain:          p.cfg.Name,
		RiskScore:       score,
		RiskLevel:       level,
		Confidence:      confidence,
		Factors:         factors,
		Recommendations: recommendations,
		Charts:          charts,
		Explanation:     p.explain(score, level, factors),
	}

	p.logger.WithFields(logrus.Fields{
		"risk_score": score,
		"risk_level": level,
		"confidence": confidence,
		"factors":    len(factors),
	}).Debug("Assessment completed")

	if includeAnalysis && p.SupportsAnalysis() {
		analysis, err := p.runAnalysis(typed)
		if err != nil {
			p.logger.WithError(err).Warn("Detailed analysis failed, returning base assessment")
			result.AnalysisError = err.Error()
		} else {
			result.Analysis = analysis
		}
	}

	return result, nil
}

// Analyze runs only the detailed-analysis hooks over a validated
// record. Domains without hooks fail with AnalysisUnsupportedError.
func (p *Predictor) Analyze(raw domain.RawRecord) (*domain.DetailedAnalysis, error) {
	if !p.SupportsAnalysis() {
		return nil, &domain.AnalysisUnsupportedError{Domain: p.cfg.Name}
	}
	typed, _, err := ValidateAndNormalize(raw, p.cfg.Schema)
	if err != nil {
		return nil, err
	}
	return p.runAnalysis(typed)
}

// runAnalysis executes the domain hooks, converting panics to errors so
// a defective hook cannot take down the base assessment.
func (p *Predictor) runAnalysis(typed *domain.TypedRecord) (analysis *domain.DetailedAnalysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			analysis = nil
			err = fmt.Errorf("analysis panic: %v", r)
		}
	}()

	hooks := p.cfg.Analysis
	analysis = &domain.DetailedAnalysis{
		ContributingFactors: []string{},
		HealthMetrics:       map[string]string{},
		LifestyleImpact:     "Lifestyle factors play a significant role in risk development.",
	}

	if hooks.ContributingFactors != nil {
		factors, hookErr := hooks.ContributingFactors(typed)
		if hookErr != nil {
			return nil, fmt.Errorf("contributing factors: %w", hookErr)
		}
		analysis.ContributingFactors = factors
	}
	if hooks.HealthMetrics != nil {
		metrics, hookErr := hooks.HealthMetrics(typed)
		if hookErr != nil {
			return nil, fmt.Errorf("health metrics: %w", hookErr)
		}
		analysis.HealthMetrics = metrics
	}
	if hooks.LifestyleImpact != nil {
		impact, hookErr := hooks.LifestyleImpact(typed)
		if hookErr != nil {
			return nil, fmt.Errorf("lifestyle impact: %w", hookErr)
		}
		analysis.LifestyleImpact = impact
	}

	return analysis, nil
}

// explain renders the free-text summary: overall assessment, the top
// contributing factors and a level-specific closing sentence.
func (p *Predictor) explain(score float64, level domain.RiskLevel, factors []domain.ContributingFactor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the provided health information, your %s shows a %s risk level with a score of %.1f%%.",
		strings.ToLower(p.cfg.DisplayName), strings.ToLower(level.String()), score*100)

	if len(factors) > 0 {
		top := factors
		if len(top) > 3 {
			top = top[:3]
		}
		labels := make([]string, len(top))
		for i, f := range top {
			labels[i] = f.Label
		}
		fmt.Fprintf(&b, " The primary contributing factors are: %s.", strings.Join(labels, ", "))
	}

	switch {
	case score < thresholdModerate:
		b.WriteString(" This indicates a relatively low risk, but maintaining healthy habits is important for prevention.")
	case score < thresholdHigh:
		b.WriteString(" This suggests moderate risk that can be managed through lifestyle modifications and regular monitoring.")
	default:
		b.WriteString(" This indicates elevated risk that requires immediate attention and potentially medical intervention.")
	}

	return b.String()
}

// Info returns the catalog entry for the domain listing.
func (p *Predictor) Info() domain.DomainInfo {
	return domain.DomainInfo{
		Name:           p.cfg.Name,
		DisplayName:    p.cfg.DisplayName,
		Description:    p.cfg.Description,
		RequiredFields: p.fieldTypes(),
	}
}

// SchemaInfo returns the domain's full field contract.
func (p *Predictor) SchemaInfo() domain.SchemaInfo {
	return domain.SchemaInfo{
		Name:                   p.cfg.Name,
		DisplayName:            p.cfg.DisplayName,
		Description:            p.cfg.Description,
		RequiredFields:         p.fieldTypes(),
		FieldDescriptions:      p.cfg.Schema.Descriptions(),
		SupportsFactorAnalysis: p.SupportsAnalysis(),
	}
}

func (p *Predictor) fieldTypes() map[string]string {
	types := make(map[string]string, p.cfg.Schema.Len())
	for _, spec := range p.cfg.Schema.Fields() {
		types[spec.Name] = string(spec.Type)
	}
	return types
}
