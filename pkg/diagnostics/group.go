package diagnostics

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Group holds the diagnostics chains discovered in one unit along with its
// display metadata.
type Group struct {
	Name        string
	Title       string
	Description string
	Url         string

	chains []*Chain
}

// FindChains scans a unit for actions declared on types named with Suffix.
// Chains are returned in declaration order.
func FindChains(unit Unit) []*Chain {
	var chains []*Chain
	for _, typ := range unit.Types() {
		if !strings.HasSuffix(typ.Name, Suffix) {
			continue
		}
		for _, action := range typ.Actions {
			chains = append(chains, newChain(typ.Name, action))
		}
	}
	return chains
}

// NewGroupFromUnit scans the unit and builds its group.
func NewGroupFromUnit(unit Unit, logger *slog.Logger) *Group {
	return NewGroup(unit, FindChains(unit), logger)
}

// NewGroup builds a group for the unit from previously scanned chains.
// Configuration failures are logged and the convention defaults are kept.
func NewGroup(unit Unit, chains []*Chain, logger *slog.Logger) *Group {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Group{
		Name:  unit.Name(),
		Title: unit.Name(),
		Url:   strings.ToLower(unit.Name()),
	}

	if cfg, ok, err := resolveConfiguration(unit); err != nil {
		logger.Warn(
			"diagnostics configuration ignored",
			"unit", unit.Name(),
			"error", err,
		)
	} else if ok {
		g.Apply(cfg)
	}

	g.chains = make([]*Chain, 0, len(chains))
	for _, c := range chains {
		c.group = g
		g.chains = append(g.chains, c)
	}

	return g
}

// Apply overrides metadata with the non-empty fields of cfg.
func (g *Group) Apply(cfg Configuration) {
	if cfg.Title != "" {
		g.Title = cfg.Title
	}
	if cfg.Description != "" {
		g.Description = cfg.Description
	}
	if cfg.Url != "" {
		g.Url = cfg.Url
	}
}

// Chains returns every chain in scan order.
func (g *Group) Chains() []*Chain {
	return slices.Clone(g.chains)
}

// Links returns the chains usable as navigation links, ordered by title.
func (g *Group) Links() []*Chain {
	links := make([]*Chain, 0, len(g.chains))
	for _, c := range g.chains {
		if c.IsLink() {
			links = append(links, c)
		}
	}

	slices.SortStableFunc(links, func(a, b *Chain) int {
		return cmp.Compare(a.Title(), b.Title())
	})
	return links
}

// GetDefaultUrl resolves the landing URL: the index link, then a lone link,
// then the group's own page.
func (g *Group) GetDefaultUrl() string {
	links := g.Links()

	for _, link := range links {
		if link.IsIndex {
			return link.RoutePattern()
		}
	}

	if len(links) == 1 {
		return links[0].RoutePattern()
	}

	return g.Path()
}

// Path returns the group's own page path.
func (g *Group) Path() string {
	return BasePath + "/" + strings.ToLower(g.Url)
}

// ValidUrl reports whether url can serve as a single route segment.
func ValidUrl(url string) bool {
	return url != "" && !strings.ContainsAny(url, "/{} ")
}

func resolveConfiguration(unit Unit) (cfg Configuration, ok bool, err error) {
	configurer, isConfigurer := unit.(Configurer)
	if !isConfigurer {
		return Configuration{}, false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			cfg, ok = Configuration{}, false
			err = fmt.Errorf("%w: %s: panic: %v", ErrConfiguration, ConfigurationName, r)
		}
	}()

	cfg, err = configurer.Configuration()
	if err != nil {
		return Configuration{}, false, fmt.Errorf("%w: %s: %w", ErrConfiguration, ConfigurationName, err)
	}
	return cfg, true, nil
}
