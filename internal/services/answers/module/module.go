// Package module wires the question answering service and exposes its ports
package module

import (
	"net/http"

	"draftforge/internal/adapters/openai"
	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	pstrings "draftforge/internal/platform/strings"
	answershttp "draftforge/internal/services/answers/http"
	"draftforge/internal/services/answers/service"
	pagesdom "draftforge/internal/services/pages/domain"
)

// Module defines the answers module
type Module struct {
	deps modkit.Deps
	svc  *service.Svc
	name string
	mws  []func(http.Handler) http.Handler

	register func(httpkit.Router)

	ports Ports
}

// New constructs the answers module. The page reader comes from the pages
// module via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("answers"),
	}, opts...)...)
	reader, ok := b.Ports.(pagesdom.ReaderPort)
	if !ok {
		panic("answers module requires a pages reader port")
	}

	o := FromConfig(deps.Cfg)
	client := openai.NewClient(openai.Options{
		BaseURL: o.ModelBaseURL,
		APIKey:  o.ModelAPIKey,
		Model:   o.Model,
		Timeout: o.ModelTimeout,
	})
	svc := service.New(reader, client, service.Config{QAPageID: o.QAPageID})

	m := &Module{deps: deps, svc: svc, name: b.Name, mws: b.Mw}

	secret := o.Secret
	external := b.Register
	m.register = func(r httpkit.Router) {
		answershttp.Register(r, svc, secret)
		if external != nil {
			external(r)
		}
	}

	m.ports = Ports{Answerer: svc}
	return m
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return pstrings.MustString(m.name, "answers") }

// MountRoutes mounts the question endpoint with any per module middleware
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}
