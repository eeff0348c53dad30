package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/health-risk-server/internal/domain"
)

func confidenceRecord(schema *domain.SchemaEntry, provided int) *domain.TypedRecord {
	r := domain.NewTypedRecord(schema.Len())
	for i, spec := range schema.Fields() {
		r.Set(spec.Name, 0.5, i < provided)
	}
	return r
}

func confidenceSchema(n int) *domain.SchemaEntry {
	specs := make([]domain.FieldSpec, n)
	for i := range specs {
		specs[i] = domain.FieldSpec{Name: string(rune('a' + i)), Type: domain.FieldFloat, Scale: 1}
	}
	return domain.MustSchema(specs...)
}

func manyFactors(n int) []domain.ContributingFactor {
	return make([]domain.ContributingFactor, n)
}

func TestEstimateConfidence_StaysWithinBounds(t *testing.T) {
	schema := confidenceSchema(4)

	// Floor: nothing provided, score at the scale end, no factors.
	low := EstimateConfidence(confidenceRecord(schema, 0), schema, 1.0, nil)
	assert.Equal(t, 0.60, low)

	// Maximum of the formula: 0.75 * (0.4 + 0.4 + 0.2), under the ceiling.
	high := EstimateConfidence(confidenceRecord(schema, 4), schema, 0.5, manyFactors(5))
	assert.InDelta(t, 0.75, high, 1e-9)
	assert.LessOrEqual(t, high, 0.95)
}

func TestEstimateConfidence_CertaintyTapersTowardScaleEnds(t *testing.T) {
	schema := confidenceSchema(4)
	typed := confidenceRecord(schema, 4)
	factors := manyFactors(3)

	mid := EstimateConfidence(typed, schema, 0.5, factors)
	extreme := EstimateConfidence(typed, schema, 0.95, factors)
	assert.Greater(t, mid, extreme)
}

func TestEstimateConfidence_CompletenessRaisesConfidence(t *testing.T) {
	schema := confidenceSchema(5)
	factors := manyFactors(5)

	partial := EstimateConfidence(confidenceRecord(schema, 2), schema, 0.5, factors)
	full := EstimateConfidence(confidenceRecord(schema, 5), schema, 0.5, factors)
	assert.Greater(t, full, partial)
}

func TestEstimateConfidence_FactorSupportSaturatesAtFive(t *testing.T) {
	schema := confidenceSchema(4)
	typed := confidenceRecord(schema, 4)

	five := EstimateConfidence(typed, schema, 0.5, manyFactors(5))
	ten := EstimateConfidence(typed, schema, 0.5, manyFactors(10))
	assert.Equal(t, five, ten)
}
