package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/diagnostics-lab/internal/diagnostics"
)

func newGroupsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List diagnostics groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			f, err := newFormatter(opts.output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.Groups(diagnostics.ListGroups(s.registry))
		},
	}
}

func newGroupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "group <name>",
		Short: "Show a diagnostics group with its links and routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := findGroup(s.registry, args[0])
			if err != nil {
				return err
			}

			f, err := newFormatter(opts.output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.Group(diagnostics.NewGroupDetail(g))
		},
	}
}

func newLinksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "links <name>",
		Short: "List the navigable links of a diagnostics group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := findGroup(s.registry, args[0])
			if err != nil {
				return err
			}

			f, err := newFormatter(opts.output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.Chains(diagnostics.NewGroupDetail(g).Links)
		},
	}
}
