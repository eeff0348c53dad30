// Package registry holds the immutable domain catalog. The registry is
// constructed once at process start from the static domain tables and
// injected into the transport layer; there is no ambient global state.
package registry

import (
	"github.com/sirupsen/logrus"

	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
)

// Registry maps domain names to their predictors. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	predictors map[string]*engine.Predictor
	order      []string
}

// New builds every predictor from its configuration. Any configuration
// defect fails construction; callers treat the error as fatal, so a
// misconfigured domain can never serve traffic.
func New(configs []*engine.DomainConfig, logger logrus.FieldLogger) (*Registry, error) {
	r := &Registry{
		predictors: make(map[string]*engine.Predictor, len(configs)),
		order:      make([]string, 0, len(configs)),
	}
	for _, cfg := range configs {
		if _, dup := r.predictors[cfg.Name]; dup {
			return nil, &domain.ScoringConfigurationError{
				Domain: cfg.Name,
				Reason: "domain registered twice",
			}
		}
		p, err := engine.NewPredictor(cfg, logger)
		if err != nil {
			return nil, err
		}
		r.predictors[cfg.Name] = p
		r.order = append(r.order, cfg.Name)
	}

	logger.WithField("domains", len(r.order)).Info("Domain registry initialized")
	return r, nil
}

// Get returns the predictor for a domain name.
func (r *Registry) Get(name string) (*engine.Predictor, error) {
	p, ok := r.predictors[name]
	if !ok {
		return nil, &domain.UnknownDomainError{Domain: name}
	}
	return p, nil
}

// List returns the catalog entries in registration order.
func (r *Registry) List() []domain.DomainInfo {
	infos := make([]domain.DomainInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.predictors[name].Info())
	}
	return infos
}

// Names returns the registered domain names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered domains.
func (r *Registry) Len() int {
	return len(r.order)
}
