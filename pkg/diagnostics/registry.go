package diagnostics

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Registry maps group names to the groups discovered in added units.
type Registry struct {
	groups    map[string]*Group
	overrides map[string]Configuration
	logger    *slog.Logger
	mu        sync.RWMutex
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for discovery diagnostics.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOverrides applies configuration keyed by group name after a unit's own
// configuration.
func WithOverrides(overrides map[string]Configuration) RegistryOption {
	return func(r *Registry) {
		r.overrides = overrides
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		groups: make(map[string]*Group),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add scans the unit and stores its group under the group name, replacing any
// previous group with that name. Units without diagnostics chains are ignored
// and Add reports false. A Url that is not a single route segment falls back
// to the lower-cased name; when that is also invalid the unit is skipped.
func (r *Registry) Add(unit Unit) (*Group, bool) {
	chains := FindChains(unit)
	if len(chains) == 0 {
		r.logger.Debug("no diagnostics chains found", "unit", unit.Name())
		return nil, false
	}

	group := NewGroup(unit, chains, r.logger)
	if override, ok := r.overrides[group.Name]; ok {
		group.Apply(override)
	}

	if !ValidUrl(group.Url) {
		fallback := strings.ToLower(group.Name)
		if !ValidUrl(fallback) {
			r.logger.Warn("diagnostics group skipped", "group", group.Name, "url", group.Url)
			return nil, false
		}
		r.logger.Warn(
			"diagnostics url rejected",
			"group", group.Name,
			"url", group.Url,
			"fallback", fallback,
		)
		group.Url = fallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[group.Name]; exists {
		r.logger.Warn("diagnostics group replaced", "group", group.Name)
	}
	r.groups[group.Name] = group

	r.logger.Info(
		"diagnostics group registered",
		"group", group.Name,
		"chains", len(group.chains),
	)
	return group, true
}

// FindGroup returns the group stored under name.
func (r *Registry) FindGroup(name string) (*Group, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[name]
	return g, ok
}

// FindGroupByUrl returns the group whose Url matches url, ignoring case.
func (r *Registry) FindGroupByUrl(url string) (*Group, bool) {
	for _, g := range r.Groups() {
		if strings.EqualFold(g.Url, url) {
			return g, true
		}
	}
	return nil, false
}

// Groups returns a snapshot of all groups ordered by name.
func (r *Registry) Groups() []*Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Group, 0, len(r.groups))
	for _, g := range r.groups {
		result = append(result, g)
	}

	slices.SortFunc(result, func(a, b *Group) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return result
}

// Len returns the number of stored groups.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups)
}
