package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
	"github.com/JaimeStill/diagnostics-lab/internal/diagnostics"
	"github.com/JaimeStill/diagnostics-lab/internal/infrastructure"
	"github.com/JaimeStill/diagnostics-lab/internal/routes"
	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
	_ "github.com/JaimeStill/diagnostics-lab/units"
)

type options struct {
	configFile string
	output     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Inspect the diagnostics registry",
		Long: `Inspect the diagnostics groups discovered from the registered units
without starting the HTTP server.

Examples:
  # List every group with its default url
  diag groups

  # Show one group with its links and routes
  diag group Runtime

  # List the navigable links of a group as YAML
  diag links Runtime --output yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newFormatter(opts.output, cmd.OutOrStdout()); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file (default: ./config.toml when present)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatText,
		"output format: text, json, or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log discovery at info level, overriding logging.level")

	cmd.AddCommand(
		newGroupsCmd(opts),
		newGroupCmd(opts),
		newLinksCmd(opts),
	)

	return cmd
}

// loadConfig reads the configured file, the default config.toml when present,
// or falls back to defaults.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	switch {
	case opts.configFile != "":
		cfg, err = config.LoadFrom(opts.configFile)
	default:
		cfg, err = config.Load()
		if errors.Is(err, os.ErrNotExist) {
			cfg, err = &config.Config{}, nil
		}
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("config finalize failed: %w", err)
	}

	if opts.verbose {
		cfg.Logging.Level = config.LogLevelInfo
	}
	return cfg, nil
}

// session holds the discovered registry and the infrastructure backing it.
type session struct {
	registry *diag.Registry
	infra    *infrastructure.Infrastructure
}

// Close releases the database pool when one was opened.
func (s *session) Close() {
	if s.infra.Database != nil {
		s.infra.Database.Pool().Close()
	}
}

// openSession discovers the registered units the same way the server does.
// Callers must Close the session.
func openSession(opts *options, logs io.Writer) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	infra, err := infrastructure.New(cfg, logs)
	if err != nil {
		return nil, err
	}
	s := &session{infra: infra}

	systems := &diagnostics.Systems{
		Logger: infra.Logging.Component("diagnostics"),
		Routes: routes.New(infra.Logging.Component("routes")),
	}
	if infra.Database != nil {
		systems.Database = infra.Database
	}

	s.registry = diagnostics.Build(systems, &cfg.Diagnostics)

	handler, err := diagnostics.NewHandler(s.registry, systems.Logger)
	if err != nil {
		s.Close()
		return nil, err
	}
	systems.Routes.RegisterGroup(handler.Routes())

	return s, nil
}

func findGroup(registry *diag.Registry, name string) (*diag.Group, error) {
	g, ok := registry.FindGroup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", diag.ErrGroupNotFound, name)
	}
	return g, nil
}
