package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/diagnostics-lab/internal/diagnostics"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type formatter struct {
	format string
	w      io.Writer
}

func newFormatter(format string, w io.Writer) (*formatter, error) {
	switch format {
	case formatText, formatJSON, formatYAML:
		return &formatter{format: format, w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func (f *formatter) Groups(groups []diagnostics.GroupInfo) error {
	if f.format != formatText {
		return f.encode(groups)
	}

	tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tDEFAULT URL")
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Name, g.Title, g.DefaultUrl)
	}
	return tw.Flush()
}

func (f *formatter) Group(g diagnostics.GroupDetail) error {
	if f.format != formatText {
		return f.encode(g)
	}

	fmt.Fprintf(f.w, "Name:        %s\n", g.Name)
	fmt.Fprintf(f.w, "Title:       %s\n", g.Title)
	if g.Description != "" {
		fmt.Fprintf(f.w, "Description: %s\n", g.Description)
	}
	fmt.Fprintf(f.w, "Url:         %s\n", g.Url)
	fmt.Fprintf(f.w, "Default:     %s\n\n", g.DefaultUrl)

	return f.Chains(g.Chains)
}

func (f *formatter) Chains(chains []diagnostics.ChainInfo) error {
	if f.format != formatText {
		return f.encode(chains)
	}

	tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tMETHOD\tPATTERN\tLINK")
	for _, c := range chains {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", c.Title, c.Method, c.Pattern, c.IsLink)
	}
	return tw.Flush()
}

func (f *formatter) encode(v any) error {
	switch f.format {
	case formatYAML:
		enc := yaml.NewEncoder(f.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
