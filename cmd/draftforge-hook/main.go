// @title         Draftforge Hook
// @version       0.1.0
// @description   Teams webhook to draft artifact pipeline

package main

import (
	"context"
	"os/signal"
	"syscall"

	"draftforge/internal/platform/config"
	"draftforge/internal/platform/logger"
	phttp "draftforge/internal/platform/net/http"

	"draftforge/internal/services/app"
)

func main() {
	root := config.New()
	hookCfg := root.Prefix("HOOK_")

	// bring up logging early
	l := logger.Get()

	// http server (reads HOOK_PORT)
	srv := phttp.NewServer(hookCfg)

	app.Mount(srv.Router(), app.Options{
		Config:        root,
		Logger:        l,
		EnableSwagger: hookCfg.MayBool("SWAGGER", true),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
