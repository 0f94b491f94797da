// Package module wires the journal into the API using modkit
package module

import (
	"net/http"

	"inkwell/internal/adapters/llm"
	modkit "inkwell/internal/modkit"
	"inkwell/internal/modkit/httpkit"
	str "inkwell/internal/platform/strings"
	jhttp "inkwell/internal/services/api/journal/http"
	jrepo "inkwell/internal/services/api/journal/repo"
	jsvc "inkwell/internal/services/api/journal/service"
	sumdomain "inkwell/internal/services/api/summary/domain"
)

// Ports declares the injected summary port this module requires
type Ports struct {
	Invalidator sumdomain.InvalidatorPort
}

// Module implements the journal module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc jsvc.Service
}

// New constructs the journal module
func New(deps modkit.Deps, oracle llm.Oracle, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("journal"),
		modkit.WithPrefix("/journal"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Invalidator == nil {
		panic("journal module requires the summary Invalidator port")
	}

	svc := jsvc.New(deps.PG, jrepo.NewPG(), oracle, injected.Invalidator)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptJournalPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		jhttp.Register(r, m.svc)
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
