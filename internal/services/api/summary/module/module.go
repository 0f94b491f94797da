// Package module wires daily summaries into the API using modkit
package module

import (
	"net/http"

	"inkwell/internal/adapters/llm"
	modkit "inkwell/internal/modkit"
	"inkwell/internal/modkit/httpkit"
	str "inkwell/internal/platform/strings"
	sumhttp "inkwell/internal/services/api/summary/http"
	sumrepo "inkwell/internal/services/api/summary/repo"
	sumsvc "inkwell/internal/services/api/summary/service"
)

// Module implements the summary module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc sumsvc.Service
}

// New constructs the summary module around the given oracle
func New(deps modkit.Deps, oracle llm.Oracle, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("summary"),
		modkit.WithPrefix("/summary"),
	}, opts...)...)

	svc := sumsvc.New(deps.PG, sumrepo.NewPG(), oracle)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Reader: svc, Invalidator: svc, Generator: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		sumhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
