// Package database exposes connection pool health as a diagnostics unit.
package database

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/diagnostics-lab/internal/database"
	"github.com/JaimeStill/diagnostics-lab/internal/diagnostics"
	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
	"github.com/JaimeStill/diagnostics-lab/pkg/handlers"
)

const UnitName = "Database"

const pingTimeout = 5 * time.Second

func init() {
	diagnostics.Register("database", New)
}

// PingResult reports the outcome of a database round trip.
type PingResult struct {
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

type handler struct {
	db database.System
}

// New builds the database diagnostics unit. It opts out when no database
// is configured.
func New(systems *diagnostics.Systems) (diag.Unit, error) {
	if systems.Database == nil {
		return nil, nil
	}

	h := &handler{db: systems.Database}

	return diag.NewUnit(UnitName,
		diag.WithTypes(diag.Type{
			Name: "DatabaseFubuDiagnostics",
			Actions: []diag.Action{
				{Name: "Pool", Title: "Connection pool", Index: true, Handler: h.Pool},
				{Name: "Ping", Title: "Ping", Handler: h.Ping},
			},
		}),
		diag.WithConfiguration(func() (diag.Configuration, error) {
			return diag.Configuration{
				Description: "PostgreSQL connection pool",
			}, nil
		}),
	), nil
}

func (h *handler) Pool(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.db.Stats())
}

func (h *handler) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	result := PingResult{
		Healthy: err == nil,
		Latency: time.Since(start).String(),
	}

	status := http.StatusOK
	if err != nil {
		result.Error = err.Error()
		status = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, status, result)
}
