// Package module wires the draft transformer service and exposes its ports
package module

import (
	"draftforge/internal/adapters/openai"
	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	"draftforge/internal/services/draft/service"
)

// Module defines the draft module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the draft module with its ports
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	client := openai.NewClient(openai.Options{
		BaseURL: opts.BaseURL,
		APIKey:  opts.APIKey,
		Model:   opts.Model,
		Timeout: opts.Timeout,
	})
	svc := service.New(client, service.Config{
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Offline:     opts.Offline,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Transformer: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "draft" }

// MountRoutes returns no HTTP routes; the transformer is consumed by the hook
func (m *Module) MountRoutes(_ httpkit.Router) {}
