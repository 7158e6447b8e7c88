package main

import (
	"github.com/JaimeStill/diagnostics-lab/internal/config"
	"github.com/JaimeStill/diagnostics-lab/internal/infrastructure"
	"github.com/JaimeStill/diagnostics-lab/internal/middleware"
)

// buildMiddleware creates the middleware stack. The first entry is outermost.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(infra.Logging.Component("http")))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.MaxBody(cfg.Server.MaxBodySizeBytes()))
	return middlewareSys
}
