package diagnostics_test

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func noop(w http.ResponseWriter, r *http.Request) {}

func TestFindChains_SuffixOnly(t *testing.T) {
	unit := diagnostics.NewUnit("Acme.Web", diagnostics.WithTypes(
		diagnostics.Type{
			Name:    "StatusFubuDiagnostics",
			Actions: []diagnostics.Action{{Name: "Show", Handler: noop}, {Name: "Detail", Handler: noop}},
		},
		diagnostics.Type{
			Name:    "StatusController",
			Actions: []diagnostics.Action{{Name: "Index", Handler: noop}},
		},
		diagnostics.Type{
			Name:    "FubuDiagnosticsHelper",
			Actions: []diagnostics.Action{{Name: "Help", Handler: noop}},
		},
	))

	chains := diagnostics.FindChains(unit)

	if len(chains) != 2 {
		t.Fatalf("len(chains) = %d, want 2", len(chains))
	}

	if chains[0].Name() != "Show" || chains[1].Name() != "Detail" {
		t.Errorf("chains = [%s %s], want [Show Detail]", chains[0].Name(), chains[1].Name())
	}

	if chains[0].Type() != "StatusFubuDiagnostics" {
		t.Errorf("Type() = %q, want %q", chains[0].Type(), "StatusFubuDiagnostics")
	}
}

func TestFindChains_EmptyUnit(t *testing.T) {
	unit := diagnostics.NewUnit("Empty")

	if chains := diagnostics.FindChains(unit); len(chains) != 0 {
		t.Errorf("len(chains) = %d, want 0", len(chains))
	}
}

func TestNewGroup_Defaults(t *testing.T) {
	unit := diagnostics.NewUnit("Acme.Diagnostics", diagnostics.WithTypes(
		diagnostics.Type{
			Name:    "StatusFubuDiagnostics",
			Actions: []diagnostics.Action{{Name: "ShowStatus", Handler: noop}},
		},
	))

	g := diagnostics.NewGroupFromUnit(unit, testLogger())

	if g.Name != "Acme.Diagnostics" {
		t.Errorf("Name = %q, want %q", g.Name, "Acme.Diagnostics")
	}

	if g.Title != "Acme.Diagnostics" {
		t.Errorf("Title = %q, want %q", g.Title, "Acme.Diagnostics")
	}

	if g.Url != "acme.diagnostics" {
		t.Errorf("Url = %q, want %q", g.Url, "acme.diagnostics")
	}

	if g.Description != "" {
		t.Errorf("Description = %q, want empty", g.Description)
	}

	chains := g.Chains()
	if len(chains) != 1 {
		t.Fatalf("len(Chains()) = %d, want 1", len(chains))
	}

	want := chains[0].RoutePattern()
	if got := g.GetDefaultUrl(); got != want {
		t.Errorf("GetDefaultUrl() = %q, want %q", got, want)
	}

	if want != "_fubu/acme.diagnostics/status/showstatus" {
		t.Errorf("RoutePattern() = %q, want %q", want, "_fubu/acme.diagnostics/status/showstatus")
	}
}

func TestNewGroup_Configuration(t *testing.T) {
	tests := []struct {
		name      string
		cfg       diagnostics.Configuration
		wantTitle string
		wantDesc  string
		wantUrl   string
	}{
		{
			name:      "title only",
			cfg:       diagnostics.Configuration{Title: "Custom"},
			wantTitle: "Custom",
			wantUrl:   "acme",
		},
		{
			name:      "all fields",
			cfg:       diagnostics.Configuration{Title: "Custom", Description: "Acme tools", Url: "tools"},
			wantTitle: "Custom",
			wantDesc:  "Acme tools",
			wantUrl:   "tools",
		},
		{
			name:      "empty record",
			cfg:       diagnostics.Configuration{},
			wantTitle: "Acme",
			wantUrl:   "acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := diagnostics.NewUnit("Acme",
				diagnostics.WithTypes(diagnostics.Type{
					Name:    "AcmeFubuDiagnostics",
					Actions: []diagnostics.Action{{Name: "Index", Handler: noop}},
				}),
				diagnostics.WithConfiguration(func() (diagnostics.Configuration, error) {
					return tt.cfg, nil
				}),
			)

			g := diagnostics.NewGroupFromUnit(unit, testLogger())

			if g.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", g.Title, tt.wantTitle)
			}
			if g.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", g.Description, tt.wantDesc)
			}
			if g.Url != tt.wantUrl {
				t.Errorf("Url = %q, want %q", g.Url, tt.wantUrl)
			}
			if g.Name != "Acme" {
				t.Errorf("Name = %q, want %q", g.Name, "Acme")
			}
		})
	}
}

func TestNewGroup_ConfigurationFailures(t *testing.T) {
	tests := []struct {
		name      string
		configure func() (diagnostics.Configuration, error)
	}{
		{
			name: "error",
			configure: func() (diagnostics.Configuration, error) {
				return diagnostics.Configuration{Title: "Ignored"}, errors.New("boom")
			},
		},
		{
			name: "panic",
			configure: func() (diagnostics.Configuration, error) {
				panic("constructor failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := diagnostics.NewUnit("Acme",
				diagnostics.WithTypes(diagnostics.Type{
					Name:    "AcmeFubuDiagnostics",
					Actions: []diagnostics.Action{{Name: "Index", Handler: noop}},
				}),
				diagnostics.WithConfiguration(tt.configure),
			)

			g := diagnostics.NewGroupFromUnit(unit, testLogger())

			if g.Title != "Acme" {
				t.Errorf("Title = %q, want %q", g.Title, "Acme")
			}
			if g.Url != "acme" {
				t.Errorf("Url = %q, want %q", g.Url, "acme")
			}
			if len(g.Chains()) != 1 {
				t.Errorf("len(Chains()) = %d, want 1", len(g.Chains()))
			}
		})
	}
}

func TestNewGroup_NilLogger(t *testing.T) {
	unit := diagnostics.NewUnit("Acme",
		diagnostics.WithTypes(diagnostics.Type{
			Name:    "AcmeFubuDiagnostics",
			Actions: []diagnostics.Action{{Name: "Index", Handler: noop}},
		}),
		diagnostics.WithConfiguration(func() (diagnostics.Configuration, error) {
			return diagnostics.Configuration{}, errors.New("boom")
		}),
	)

	g := diagnostics.NewGroupFromUnit(unit, nil)
	if g.Title != "Acme" {
		t.Errorf("Title = %q, want %q", g.Title, "Acme")
	}
}

func TestGroup_Links(t *testing.T) {
	unit := diagnostics.NewUnit("Acme", diagnostics.WithTypes(diagnostics.Type{
		Name: "AcmeFubuDiagnostics",
		Actions: []diagnostics.Action{
			{Name: "Zeta", Handler: noop},
			{Name: "Detail", Inputs: []string{"id"}, Handler: noop},
			{Name: "Alpha", Handler: noop},
			{Name: "Reset", Method: http.MethodPost, Handler: noop},
			{Name: "Mid", Title: "Beta", Handler: noop},
		},
	}))

	g := diagnostics.NewGroupFromUnit(unit, testLogger())
	links := g.Links()

	want := []string{"Alpha", "Beta", "Zeta"}
	if len(links) != len(want) {
		t.Fatalf("len(Links()) = %d, want %d", len(links), len(want))
	}

	for i, title := range want {
		if links[i].Title() != title {
			t.Errorf("Links()[%d].Title() = %q, want %q", i, links[i].Title(), title)
		}
		if !links[i].IsLink() {
			t.Errorf("Links()[%d] is not a link", i)
		}
	}

	if len(g.Chains()) != 5 {
		t.Errorf("len(Chains()) = %d, want 5", len(g.Chains()))
	}
}

func TestGroup_GetDefaultUrl(t *testing.T) {
	tests := []struct {
		name    string
		actions []diagnostics.Action
		want    string
	}{
		{
			name: "index wins over multiple links",
			actions: []diagnostics.Action{
				{Name: "First", Handler: noop},
				{Name: "Home", Index: true, Handler: noop},
				{Name: "Second", Handler: noop},
			},
			want: "_fubu/acme/home",
		},
		{
			name: "index with non-index non-link routes",
			actions: []diagnostics.Action{
				{Name: "Home", Index: true, Handler: noop},
				{Name: "Detail", Inputs: []string{"id"}, Handler: noop},
			},
			want: "_fubu/acme/home",
		},
		{
			name: "single link",
			actions: []diagnostics.Action{
				{Name: "Only", Handler: noop},
				{Name: "Detail", Inputs: []string{"id"}, Handler: noop},
			},
			want: "_fubu/acme/only",
		},
		{
			name: "multiple links",
			actions: []diagnostics.Action{
				{Name: "First", Handler: noop},
				{Name: "Second", Handler: noop},
			},
			want: "_fubu/acme",
		},
		{
			name: "no links",
			actions: []diagnostics.Action{
				{Name: "Detail", Inputs: []string{"id"}, Handler: noop},
			},
			want: "_fubu/acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := diagnostics.NewUnit("Acme", diagnostics.WithTypes(diagnostics.Type{
				Name:    "FubuDiagnostics",
				Actions: tt.actions,
			}))

			g := diagnostics.NewGroupFromUnit(unit, testLogger())

			if got := g.GetDefaultUrl(); got != tt.want {
				t.Errorf("GetDefaultUrl() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroup_GetDefaultUrl_LowerCasesConfiguredUrl(t *testing.T) {
	unit := diagnostics.NewUnit("Acme",
		diagnostics.WithTypes(diagnostics.Type{
			Name:    "AcmeFubuDiagnostics",
			Actions: []diagnostics.Action{{Name: "A", Handler: noop}, {Name: "B", Handler: noop}},
		}),
		diagnostics.WithConfiguration(func() (diagnostics.Configuration, error) {
			return diagnostics.Configuration{Url: "Tools"}, nil
		}),
	)

	g := diagnostics.NewGroupFromUnit(unit, testLogger())

	if got := g.GetDefaultUrl(); got != "_fubu/tools" {
		t.Errorf("GetDefaultUrl() = %q, want %q", got, "_fubu/tools")
	}
}
