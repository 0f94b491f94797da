// Package module wires moods into the API using modkit
package module

import (
	"net/http"

	modkit "inkwell/internal/modkit"
	"inkwell/internal/modkit/httpkit"
	str "inkwell/internal/platform/strings"
	mhttp "inkwell/internal/services/api/mood/http"
	mrepo "inkwell/internal/services/api/mood/repo"
	msvc "inkwell/internal/services/api/mood/service"
	sumdomain "inkwell/internal/services/api/summary/domain"
)

// Ports declares the injected summary ports this module requires
type Ports struct {
	Reader      sumdomain.ReaderPort
	Invalidator sumdomain.InvalidatorPort
}

// Module implements the mood module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc msvc.Service
}

// New constructs the mood module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("mood"),
		modkit.WithPrefix("/mood"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Reader == nil || injected.Invalidator == nil {
		panic("mood module requires the summary Reader and Invalidator ports")
	}

	svc := msvc.New(deps.PG, mrepo.NewPG(), injected.Reader, injected.Invalidator)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		mhttp.Register(r, m.svc)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
