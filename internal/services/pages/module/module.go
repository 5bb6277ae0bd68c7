// Package module wires the pages reader service and exposes its ports
package module

import (
	"draftforge/internal/adapters/notion"
	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	"draftforge/internal/services/pages/service"
)

// Module defines the pages module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the pages module with its ports
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	client := notion.NewClient(notion.Options{
		BaseURL: opts.BaseURL,
		Token:   opts.Token,
		Version: opts.Version,
		Timeout: opts.Timeout,
	})
	svc := service.New(client)

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "pages" }

// MountRoutes returns no HTTP routes; the reader is consumed by other modules
func (m *Module) MountRoutes(_ httpkit.Router) {}
