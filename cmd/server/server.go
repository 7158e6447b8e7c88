package main

import (
	"fmt"
	"io"
	"time"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
	"github.com/JaimeStill/diagnostics-lab/internal/diagnostics"
	"github.com/JaimeStill/diagnostics-lab/internal/infrastructure"
	"github.com/JaimeStill/diagnostics-lab/internal/routes"
	"github.com/JaimeStill/diagnostics-lab/internal/server"
	_ "github.com/JaimeStill/diagnostics-lab/units"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra *infrastructure.Infrastructure
	http  server.System
}

// NewServer creates and initializes the server with all subsystems.
// Log output goes to w, or stdout when w is nil.
func NewServer(cfg *config.Config, w io.Writer) (*Server, error) {
	infra, err := infrastructure.New(cfg, w)
	if err != nil {
		return nil, err
	}

	routeSys := routes.New(infra.Logging.Component("routes"))
	registerRoutes(routeSys, infra.Lifecycle)

	if cfg.Diagnostics.Disabled {
		infra.Logger.Info("diagnostics disabled")
	} else if err := registerDiagnostics(routeSys, infra, &cfg.Diagnostics); err != nil {
		return nil, err
	}

	handler := buildMiddleware(infra, cfg).Apply(routeSys.Build())

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"env", cfg.Env(),
	)

	return &Server{
		infra: infra,
		http:  server.New(&cfg.Server, handler, infra.Logging.Component("server")),
	}, nil
}

// registerDiagnostics discovers the registered diagnostics units and mounts
// their routes alongside the diagnostics UI and API.
func registerDiagnostics(r routes.System, infra *infrastructure.Infrastructure, cfg *config.DiagnosticsConfig) error {
	logger := infra.Logging.Component("diagnostics")

	systems := &diagnostics.Systems{
		Logger: logger,
		Routes: r,
	}
	if infra.Database != nil {
		systems.Database = infra.Database
	}

	registry := diagnostics.Build(systems, cfg)

	handler, err := diagnostics.NewHandler(registry, logger)
	if err != nil {
		return fmt.Errorf("diagnostics init failed: %w", err)
	}
	r.RegisterGroup(handler.Routes())

	logger.Info("diagnostics registered", "groups", registry.Len())
	return nil
}

// Addr returns the address the HTTP server is bound to.
func (s *Server) Addr() string {
	return s.http.Addr()
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting server")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within the timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
