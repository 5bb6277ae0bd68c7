// Package module wires the webhook pipeline and exposes its ports
package module

import (
	"net/http"

	"draftforge/internal/core/dedup"
	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	pstrings "draftforge/internal/platform/strings"
	hookhttp "draftforge/internal/services/hook/http"
	"draftforge/internal/services/hook/service"
)

// Module defines the hook module
type Module struct {
	deps modkit.Deps
	svc  *service.Svc
	name string
	mws  []func(http.Handler) http.Handler

	register func(httpkit.Router)

	ports Ports
}

// New constructs the hook module. Downstream ports come from the other
// modules via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("hook"),
	}, opts...)...)
	wired, ok := b.Ports.(service.Ports)
	if !ok {
		panic("hook module requires service.Ports")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(wired, dedup.New(deps.Tick()), service.Config{Secret: cfg.Secret})

	m := &Module{deps: deps, svc: svc, name: b.Name, mws: b.Mw}

	external := b.Register
	m.register = func(r httpkit.Router) {
		hookhttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}

	m.ports = Ports{Webhook: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return pstrings.MustString(m.name, "hook") }

// MountRoutes mounts the webhook endpoint with any per module middleware
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}
