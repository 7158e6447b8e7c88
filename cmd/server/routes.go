package main

import (
	"net/http"

	"github.com/JaimeStill/diagnostics-lab/internal/lifecycle"
	"github.com/JaimeStill/diagnostics-lab/internal/routes"
)

// registerRoutes configures the health and readiness probes.
func registerRoutes(r routes.System, lc *lifecycle.Coordinator) {
	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: handleReadiness(lc),
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReadiness reports 503 until every startup hook has completed.
func handleReadiness(lc *lifecycle.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
