package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
)

// EnvDiagnosticsDisabled turns the diagnostics routes off.
const EnvDiagnosticsDisabled = "DIAGNOSTICS_DISABLED"

// DiagnosticsConfig controls diagnostics discovery. Groups overrides the
// display metadata of discovered groups, keyed by group name.
type DiagnosticsConfig struct {
	Disabled bool                                 `toml:"disabled"`
	Groups   map[string]diagnostics.Configuration `toml:"groups"`
}

// Finalize applies defaults, loads environment overrides, and validates the diagnostics configuration.
func (c *DiagnosticsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies the overlay's group overrides on top of the base entries.
func (c *DiagnosticsConfig) Merge(overlay *DiagnosticsConfig) {
	if overlay.Disabled {
		c.Disabled = true
	}
	if len(overlay.Groups) > 0 && c.Groups == nil {
		c.Groups = make(map[string]diagnostics.Configuration, len(overlay.Groups))
	}
	for name, cfg := range overlay.Groups {
		base := c.Groups[name]
		if cfg.Title != "" {
			base.Title = cfg.Title
		}
		if cfg.Description != "" {
			base.Description = cfg.Description
		}
		if cfg.Url != "" {
			base.Url = cfg.Url
		}
		c.Groups[name] = base
	}
}

func (c *DiagnosticsConfig) loadDefaults() {
	if c.Groups == nil {
		c.Groups = make(map[string]diagnostics.Configuration)
	}
}

func (c *DiagnosticsConfig) loadEnv() {
	if v := os.Getenv(EnvDiagnosticsDisabled); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil {
			c.Disabled = disabled
		}
	}
}

func (c *DiagnosticsConfig) validate() error {
	for name, cfg := range c.Groups {
		if cfg.Url != "" && !diagnostics.ValidUrl(cfg.Url) {
			return fmt.Errorf("group %s: invalid url %q", name, cfg.Url)
		}
	}
	return nil
}
