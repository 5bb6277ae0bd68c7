// Package module wires the archive writer service and exposes its ports
package module

import (
	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	"draftforge/internal/services/archive/repo"
	"draftforge/internal/services/archive/service"
)

// Module defines the archive module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the archive module with its ports
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	svc := service.New(repo.NewFS(opts.BaseDir), service.Config{Ext: opts.Ext}, deps.Tick())

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "archive" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
