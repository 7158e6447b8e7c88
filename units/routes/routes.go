// Package routes exposes the host route table as a diagnostics unit.
package routes

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/JaimeStill/diagnostics-lab/internal/diagnostics"
	"github.com/JaimeStill/diagnostics-lab/internal/routes"
	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
	"github.com/JaimeStill/diagnostics-lab/pkg/handlers"
)

const UnitName = "Routes"

func init() {
	diagnostics.Register("routes", New)
}

// MethodCount is the number of routes registered for one HTTP method.
type MethodCount struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

type handler struct {
	routes routes.System
}

// New builds the routes diagnostics unit. It opts out when the host has
// no route system.
func New(systems *diagnostics.Systems) (diag.Unit, error) {
	if systems.Routes == nil {
		return nil, nil
	}

	h := &handler{routes: systems.Routes}

	return diag.NewUnit(UnitName,
		diag.WithTypes(diag.Type{
			Name: "RoutesFubuDiagnostics",
			Actions: []diag.Action{
				{Name: "Routes", Title: "All routes", Index: true, Handler: h.Routes},
				{Name: "Methods", Title: "Routes by method", Handler: h.Methods},
			},
		}),
		diag.WithConfiguration(func() (diag.Configuration, error) {
			return diag.Configuration{
				Description: "Routes registered with the HTTP server",
			}, nil
		}),
	), nil
}

// Routes lists every registered route sorted by pattern then method.
func (h *handler) Routes(w http.ResponseWriter, r *http.Request) {
	entries := h.routes.Entries()
	slices.SortStableFunc(entries, func(a, b routes.Entry) int {
		return cmp.Or(
			cmp.Compare(a.Pattern, b.Pattern),
			cmp.Compare(a.Method, b.Method),
		)
	})
	handlers.RespondJSON(w, http.StatusOK, entries)
}

// Methods counts registered routes per HTTP method.
func (h *handler) Methods(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, CountMethods(h.routes.Entries()))
}

// CountMethods groups entries by method, sorted by method name.
func CountMethods(entries []routes.Entry) []MethodCount {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Method]++
	}

	result := make([]MethodCount, 0, len(counts))
	for method, count := range counts {
		result = append(result, MethodCount{Method: method, Count: count})
	}
	slices.SortFunc(result, func(a, b MethodCount) int {
		return cmp.Compare(a.Method, b.Method)
	})
	return result
}
