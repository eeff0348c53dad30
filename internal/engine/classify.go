package engine

import "github.com/health-risk-server/internal/domain"

// Classification thresholds, fixed system-wide so level semantics stay
// comparable across domains.
const (
	thresholdModerate = 0.30
	thresholdHigh     = 0.60
	thresholdVeryHigh = 0.80
)

// Classify maps a composite risk score to its ordinal level. Total over
// [0,1]: every score classifies, boundaries belong to the upper level.
func Classify(score float64) domain.RiskLevel {
	switch {
	case score < thresholdModerate:
		return domain.RiskLow
	case score < thresholdHigh:
		return domain.RiskModerate
	case score < thresholdVeryHigh:
		return domain.RiskHigh
	default:
		return domain.RiskVeryHigh
	}
}
