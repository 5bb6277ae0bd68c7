// Package module wires the notifier service and exposes its ports
package module

import (
	"draftforge/internal/adapters/teams"
	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	"draftforge/internal/services/notify/service"
)

// Module defines the notify module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the notify module with its ports
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	client := teams.NewClient(teams.Options{Timeout: opts.Timeout})
	svc := service.New(client, service.Config{WebhookURL: opts.WebhookURL})

	m := &Module{deps: deps}
	m.ports = Ports{Notifier: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "notify" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
