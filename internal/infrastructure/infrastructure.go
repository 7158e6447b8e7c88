// Package infrastructure assembles the core systems shared by the server
// and the diagnostics units: lifecycle coordination, logging, and the
// optional database pool.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
	"github.com/JaimeStill/diagnostics-lab/internal/database"
	"github.com/JaimeStill/diagnostics-lab/internal/lifecycle"
	"github.com/JaimeStill/diagnostics-lab/internal/logger"
)

// Infrastructure holds the core systems required at startup.
// Database is nil when the database section is disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logging   logger.System
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
// Log output goes to w, or stdout when w is nil.
func New(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	logging := logger.New(&cfg.Logging, w)

	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logging:   logging,
		Logger:    logging.Logger(),
	}

	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database, logging.Component("database"))
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	return infra, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	return nil
}
