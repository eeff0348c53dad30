package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel_IsValid(t *testing.T) {
	tests := []struct {
		level RiskLevel
		valid bool
	}{
		{RiskLow, true},
		{RiskModerate, true},
		{RiskHigh, true},
		{RiskVeryHigh, true},
		{RiskLevel("Extreme"), false},
		{RiskLevel(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.level.IsValid(), "level %q", tt.level)
	}
}

func TestRiskLevel_Rank_TotalOrder(t *testing.T) {
	assert.Less(t, RiskLow.Rank(), RiskModerate.Rank())
	assert.Less(t, RiskModerate.Rank(), RiskHigh.Rank())
	assert.Less(t, RiskHigh.Rank(), RiskVeryHigh.Rank())
}

func TestRiskLevel_String_VeryHighSpelling(t *testing.T) {
	// The two-word spelling is part of the output contract.
	assert.Equal(t, "Very High", RiskVeryHigh.String())
}

func TestSeverityForContribution(t *testing.T) {
	tests := []struct {
		contribution float64
		want         Severity
	}{
		{0.0, SeverityMild},
		{0.19, SeverityMild},
		{0.2, SeverityModerate},
		{0.49, SeverityModerate},
		{0.5, SeveritySevere},
		{0.79, SeveritySevere},
		{0.8, SeverityCritical},
		{1.0, SeverityCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityForContribution(tt.contribution), "contribution %v", tt.contribution)
	}
}

func TestFieldType_IsValid(t *testing.T) {
	for _, ft := range []FieldType{FieldInteger, FieldFloat, FieldBool, FieldString, FieldOrdinal} {
		assert.True(t, ft.IsValid(), "type %q", ft)
	}
	assert.False(t, FieldType("decimal").IsValid())
}
