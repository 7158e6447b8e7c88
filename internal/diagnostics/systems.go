package diagnostics

import (
	"log/slog"

	"github.com/JaimeStill/diagnostics-lab/internal/database"
	"github.com/JaimeStill/diagnostics-lab/internal/routes"
)

// Systems provides access to host systems for diagnostics unit construction.
// Database is nil when no database is configured.
type Systems struct {
	Logger   *slog.Logger
	Routes   routes.System
	Database database.System
}
