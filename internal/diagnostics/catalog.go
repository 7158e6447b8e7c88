package diagnostics

import (
	"fmt"
	"slices"
	"sync"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
)

// UnitFactory builds a diagnostics unit from the host systems.
// A nil unit with a nil error opts the unit out for this host.
type UnitFactory func(systems *Systems) (diag.Unit, error)

type unitCatalog struct {
	factories map[string]UnitFactory
	mu        sync.RWMutex
}

var catalog = &unitCatalog{
	factories: make(map[string]UnitFactory),
}

// Register adds a unit factory to the catalog. Unit packages call it from init.
func Register(name string, factory UnitFactory) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	catalog.factories[name] = factory
}

// Get returns the factory registered under name.
func Get(name string) (UnitFactory, error) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	factory, ok := catalog.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnitNotFound, name)
	}
	return factory, nil
}

// Names lists registered factory names in sorted order.
func Names() []string {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	names := make([]string, 0, len(catalog.factories))
	for name := range catalog.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build constructs every registered unit and adds it to a new registry.
// Factory failures are logged and skipped so discovery never blocks startup.
func Build(systems *Systems, cfg *config.DiagnosticsConfig) *diag.Registry {
	logger := systems.Logger.With("component", "diagnostics")

	registry := diag.NewRegistry(
		diag.WithLogger(logger),
		diag.WithOverrides(cfg.Groups),
	)

	for _, name := range Names() {
		factory, err := Get(name)
		if err != nil {
			continue
		}

		unit, err := factory(systems)
		if err != nil {
			logger.Warn("diagnostics unit skipped", "unit", name, "error", err)
			continue
		}
		if unit == nil {
			logger.Debug("diagnostics unit opted out", "unit", name)
			continue
		}

		registry.Add(unit)
	}

	return registry
}
