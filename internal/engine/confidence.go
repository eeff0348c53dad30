package engine

import "github.com/health-risk-server/internal/domain"

// Confidence bounds: the system never claims near-certainty or
// near-randomness about a screening result.
const (
	confidenceFloor   = 0.60
	confidenceCeiling = 0.95
	confidenceBase    = 0.75
)

// EstimateConfidence combines input completeness, score certainty and
// factor support into a bounded confidence value. Certainty is
// 1 - 2*|0.5 - score|, so it tapers toward the scale ends.
func EstimateConfidence(typed *domain.TypedRecord, schema *domain.SchemaEntry, score float64, factors []domain.ContributingFactor) float64 {
	completeness := float64(typed.ProvidedCount()) / float64(schema.Len())

	certainty := 1.0 - 2.0*absFloat(0.5-score)

	factorSupport := float64(len(factors)) / 5.0
	if factorSupport > 1 {
		factorSupport = 1
	}

	confidence := confidenceBase * (0.4*completeness + 0.4*certainty + 0.2*factorSupport)

	if confidence < confidenceFloor {
		return confidenceFloor
	}
	if confidence > confidenceCeiling {
		return confidenceCeiling
	}
	return confidence
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
