package engine

import (
	"fmt"

	"github.com/health-risk-server/internal/domain"
)

// maxRecommendations caps the composed advice list.
const maxRecommendations = 15

// topFactorsForAdvice limits how many ranked factors contribute a
// factor-specific remediation.
const topFactorsForAdvice = 5

var genericAdvice = map[domain.RiskLevel][]string{
	domain.RiskLow: {
		"Maintain your current healthy lifestyle",
		"Continue regular check-ups with your healthcare provider",
		"Stay physically active and eat a balanced diet",
		"Revisit the assessment annually or whenever your health changes",
	},
	domain.RiskModerate: {
		"Consider lifestyle modifications to reduce risk",
		"Schedule more frequent health screenings",
		"Consult with your healthcare provider about prevention strategies",
		"Monitor relevant health metrics regularly",
	},
	domain.RiskHigh: {
		"Seek immediate consultation with a healthcare professional",
		"Consider comprehensive health screening",
		"Implement significant lifestyle changes",
		"Follow up with specialist if recommended",
	},
	domain.RiskVeryHigh: {
		"Urgent medical consultation recommended",
		"Comprehensive diagnostic testing may be needed",
		"Consider immediate lifestyle interventions",
		"Follow all medical advice strictly",
	},
}

var monitoringAdvice = []string{
	"Schedule regular follow-up appointments with your healthcare provider",
	"Monitor key health metrics daily or weekly as advised",
	"Keep a health diary to track symptoms and improvements",
}

// ComposeRecommendations merges level-generic advice, factor-specific
// remediations for the top ranked factors, lifestyle advice and, at
// High or above, monitoring advice. Insertion order is a usability
// contract: generic first, factor-specific second, lifestyle and
// monitoring last. Duplicates are skipped, the list is capped at 15.
func ComposeRecommendations(cfg *DomainConfig, level domain.RiskLevel, score float64, typed *domain.TypedRecord, factors []domain.ContributingFactor) []string {
	recommendations := make([]string, 0, maxRecommendations)
	seen := make(map[string]struct{}, maxRecommendations)

	appendUnique := func(advice string) {
		if advice == "" {
			return
		}
		if _, dup := seen[advice]; dup {
			return
		}
		seen[advice] = struct{}{}
		recommendations = append(recommendations, advice)
	}

	for _, advice := range genericAdvice[level] {
		appendUnique(advice)
	}

	top := factors
	if len(top) > topFactorsForAdvice {
		top = top[:topFactorsForAdvice]
	}
	for _, factor := range top {
		appendUnique(remediationFor(factor))
	}

	for _, rule := range cfg.Lifestyle {
		if rule.When(typed, score) {
			appendUnique(rule.Advice)
		}
	}

	if level == domain.RiskHigh || level == domain.RiskVeryHigh {
		for _, advice := range monitoringAdvice {
			appendUnique(advice)
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func remediationFor(factor domain.ContributingFactor) string {
	if factor.Remediation != "" {
		return factor.Remediation
	}
	return fmt.Sprintf("Address the %s to reduce risk.", factor.Label)
}
