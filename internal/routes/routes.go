// Package routes provides HTTP route registration and handler building.
package routes

import (
	"log/slog"
	"net/http"
	"sync"
)

// System defines the interface for route registration and HTTP handler building.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
	Entries() []Entry
}

type routes struct {
	routes []Route
	groups []Group
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger) System {
	return &routes{
		logger: logger,
		groups: []Group{},
		routes: []Route{},
	}
}

func (r *routes) Groups() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Group(nil), r.groups...)
}

func (r *routes) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Route(nil), r.routes...)
}

// RegisterRoute adds a route to the route system.
func (r *routes) RegisterRoute(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *routes) RegisterGroup(group Group) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = append(r.groups, group)
}

// Entries flattens standalone routes and groups into fully prefixed entries,
// in registration order.
func (r *routes) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []Entry
	for _, route := range r.routes {
		entries = append(entries, Entry{Method: route.Method, Pattern: route.Pattern})
	}
	for _, group := range r.groups {
		entries = appendGroup(entries, "", group)
	}
	return entries
}

// Build constructs an http.Handler from all registered routes and groups.
func (r *routes) Build() http.Handler {
	mux := http.NewServeMux()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, route := range r.routes {
		r.handle(mux, route.Method, route.Pattern, route.Handler)
	}

	for _, group := range r.groups {
		r.registerGroup(mux, "", group)
	}

	return mux
}

func (r *routes) registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		r.handle(mux, route.Method, fullPrefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		r.registerGroup(mux, fullPrefix, child)
	}
}

func (r *routes) handle(mux *http.ServeMux, method, pattern string, handler http.HandlerFunc) {
	r.logger.Debug("route registered", "method", method, "pattern", pattern)
	mux.HandleFunc(method+" "+pattern, handler)
}

func appendGroup(entries []Entry, parentPrefix string, group Group) []Entry {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		entries = append(entries, Entry{
			Method:  route.Method,
			Pattern: fullPrefix + route.Pattern,
			Tags:    group.Tags,
		})
	}
	for _, child := range group.Children {
		entries = appendGroup(entries, fullPrefix, child)
	}
	return entries
}
