package registry

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func simpleConfig(name string) *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        name,
		DisplayName: name,
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "value", Type: domain.FieldFloat, Scale: 1, Clamp: true},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "value", Contribution: engine.Scaled(1, 1)},
		}},
	}
}

func TestNew_BuildsAllDomains(t *testing.T) {
	reg, err := New([]*engine.DomainConfig{
		simpleConfig("alpha"),
		simpleConfig("beta"),
	}, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"alpha", "beta"}, reg.Names(), "registration order preserved")
}

func TestNew_RejectsDuplicateName(t *testing.T) {
	_, err := New([]*engine.DomainConfig{
		simpleConfig("alpha"),
		simpleConfig("alpha"),
	}, testLogger())

	var cfgErr *domain.ScoringConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "alpha", cfgErr.Domain)
}

func TestNew_PropagatesPredictorConstructionError(t *testing.T) {
	broken := simpleConfig("broken")
	broken.Weights = map[string]float64{"ghost": 0.5}

	_, err := New([]*engine.DomainConfig{broken}, testLogger())
	assert.Error(t, err)
}

func TestGet_UnknownDomain(t *testing.T) {
	reg, err := New([]*engine.DomainConfig{simpleConfig("alpha")}, testLogger())
	require.NoError(t, err)

	_, err = reg.Get("nonexistent")
	var unknown *domain.UnknownDomainError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonexistent", unknown.Domain)
}

func TestList_MatchesRegistrationOrder(t *testing.T) {
	reg, err := New([]*engine.DomainConfig{
		simpleConfig("zeta"),
		simpleConfig("alpha"),
	}, testLogger())
	require.NoError(t, err)

	infos := reg.List()
	require.Len(t, infos, 2)
	assert.Equal(t, "zeta", infos[0].Name)
	assert.Equal(t, "alpha", infos[1].Name)
}
