// Package module wires the digest worker service and exposes its ports
package module

import (
	modkit "inkwell/internal/modkit"
	"inkwell/internal/modkit/httpkit"
	"inkwell/internal/platform/config"
	sumdomain "inkwell/internal/services/api/summary/domain"
	dom "inkwell/internal/services/digest/domain"
	"inkwell/internal/services/digest/repo"
	"inkwell/internal/services/digest/service"
)

// Options controls the digest worker
type Options struct {
	At string
}

// FromConfig reads with DIGEST_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("DIGEST_")
	return Options{
		At: c.MayString("AT", "23:30"),
	}
}

// Ports holds the ports exposed by the digest module
type Ports struct {
	Runner dom.RunnerPort
}

// Module defines the digest worker module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the digest worker module with its ports
func New(deps modkit.Deps, gen sumdomain.GeneratorPort, overrides Options) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	if overrides.At != "" {
		opts.At = overrides.At
	}

	svc, err := service.New(deps.PG, repo.NewPG(), gen, service.Config{At: opts.At})
	if err != nil {
		return nil, err
	}

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m, nil
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "digest" }

// Prefix returns the module config prefix (none for worker-only service)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
