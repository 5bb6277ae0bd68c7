// Package app composes the draftforge HTTP application
package app

import (
	"draftforge/internal/platform/config"
	"draftforge/internal/platform/logger"
	phttp "draftforge/internal/platform/net/http"

	"draftforge/internal/modkit"
	"draftforge/internal/modkit/httpkit"
	"draftforge/internal/modkit/module"
	"draftforge/internal/modkit/swaggerkit"

	answersmod "draftforge/internal/services/answers/module"
	archivemod "draftforge/internal/services/archive/module"
	draftmod "draftforge/internal/services/draft/module"
	hookmod "draftforge/internal/services/hook/module"
	hooksvc "draftforge/internal/services/hook/service"
	metamod "draftforge/internal/services/meta/module"
	notifymod "draftforge/internal/services/notify/module"
	pagesmod "draftforge/internal/services/pages/module"
)

// Options are the application options
type Options struct {
	Config        config.Conf
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount wires all modules and mounts them onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
	}

	// Leaf modules first; the hook pipeline consumes their ports
	pages := pagesmod.New(deps)
	reader := module.MustPortsOf[pagesmod.Ports](pages).Reader

	draft := draftmod.New(deps)
	archive := archivemod.New(deps)
	notify := notifymod.New(deps)

	hook := hookmod.New(deps, modkit.WithPorts(hooksvc.Ports{
		Reader:      reader,
		Transformer: module.MustPortsOf[draftmod.Ports](draft).Transformer,
		Writer:      module.MustPortsOf[archivemod.Ports](archive).Writer,
		Notifier:    module.MustPortsOf[notifymod.Ports](notify).Notifier,
	}))

	answers := answersmod.New(deps, modkit.WithPorts(reader))
	meta := metamod.New(deps)

	mods := []module.Module{pages, draft, archive, notify, hook, answers, meta}

	// the common stack runs at the root so the heartbeat, swagger and the
	// raw-body capture all sit in front of every route
	r.Use(httpkit.CommonStack()...)

	swaggerkit.Mount(r, opt.EnableSwagger)

	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for
			// cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
