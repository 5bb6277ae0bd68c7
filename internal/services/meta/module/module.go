// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	pstrings "draftforge/internal/platform/strings"
	metahttp "draftforge/internal/services/meta/http"
)

// Module defines the meta module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs the meta module. Callers may override the name and prefix
// and append endpoints via modkit.WithRegister
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "draftforge-hook",
			StartedAt:   m.startedAt,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return nil }

// Name returns the module name
func (m *Module) Name() string { return pstrings.MustString(m.name, "meta") }

// Prefix returns the normalized mount prefix
func (m *Module) Prefix() string { return pstrings.MustPrefix(m.prefix) }

// MountRoutes mounts the meta endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}
