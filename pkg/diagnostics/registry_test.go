package diagnostics_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
)

func diagnosticsUnit(name string, actions ...string) diagnostics.Unit {
	typ := diagnostics.Type{Name: "StatusFubuDiagnostics"}
	for _, a := range actions {
		typ.Actions = append(typ.Actions, diagnostics.Action{Name: a, Handler: noop})
	}
	return diagnostics.NewUnit(name, diagnostics.WithTypes(typ))
}

func TestRegistry_Add(t *testing.T) {
	r := diagnostics.NewRegistry(diagnostics.WithLogger(testLogger()))

	g, ok := r.Add(diagnosticsUnit("Acme", "Show", "List"))
	if !ok {
		t.Fatal("Add() = false, want true")
	}

	found, ok := r.FindGroup("Acme")
	if !ok {
		t.Fatal("FindGroup() did not find added group")
	}

	if found != g {
		t.Error("FindGroup() returned a different group than Add()")
	}

	if len(found.Chains()) != 2 {
		t.Errorf("len(Chains()) = %d, want 2", len(found.Chains()))
	}
}

func TestRegistry_Add_NoChains(t *testing.T) {
	r := diagnostics.NewRegistry()

	unit := diagnostics.NewUnit("Plain", diagnostics.WithTypes(diagnostics.Type{
		Name:    "StatusController",
		Actions: []diagnostics.Action{{Name: "Index", Handler: noop}},
	}))

	g, ok := r.Add(unit)
	if ok || g != nil {
		t.Errorf("Add() = (%v, %v), want (nil, false)", g, ok)
	}

	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}

	if _, ok := r.FindGroup("Plain"); ok {
		t.Error("FindGroup() found group for unit without chains")
	}
}

func TestRegistry_Add_ReplacesDuplicate(t *testing.T) {
	r := diagnostics.NewRegistry(diagnostics.WithLogger(testLogger()))

	r.Add(diagnosticsUnit("Acme", "Show"))
	second, _ := r.Add(diagnosticsUnit("Acme", "Show", "List", "Trace"))

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	found, _ := r.FindGroup("Acme")
	if found != second {
		t.Error("FindGroup() should return the last added group")
	}

	if len(found.Chains()) != 3 {
		t.Errorf("len(Chains()) = %d, want 3", len(found.Chains()))
	}
}

func TestRegistry_Add_DistinctUnitsDoNotCollide(t *testing.T) {
	r := diagnostics.NewRegistry()

	r.Add(diagnosticsUnit("Acme", "Show"))
	r.Add(diagnosticsUnit("Globex", "Show"))

	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistry_FindGroup_Missing(t *testing.T) {
	r := diagnostics.NewRegistry()

	g, ok := r.FindGroup("missing")
	if ok {
		t.Error("FindGroup() = true for missing group")
	}
	if g != nil {
		t.Error("FindGroup() returned non-nil group for missing name")
	}
}

func TestRegistry_FindGroupByUrl(t *testing.T) {
	r := diagnostics.NewRegistry()
	r.Add(diagnosticsUnit("Acme.Diagnostics", "Show"))

	g, ok := r.FindGroupByUrl("acme.diagnostics")
	if !ok {
		t.Fatal("FindGroupByUrl() did not find group")
	}
	if g.Name != "Acme.Diagnostics" {
		t.Errorf("Name = %q, want %q", g.Name, "Acme.Diagnostics")
	}

	if _, ok := r.FindGroupByUrl("globex"); ok {
		t.Error("FindGroupByUrl() found unknown url")
	}
}

func TestRegistry_Groups(t *testing.T) {
	r := diagnostics.NewRegistry()
	r.Add(diagnosticsUnit("Charlie", "Show"))
	r.Add(diagnosticsUnit("Alpha", "Show"))
	r.Add(diagnosticsUnit("Bravo", "Show"))

	groups := r.Groups()
	want := []string{"Alpha", "Bravo", "Charlie"}

	if len(groups) != len(want) {
		t.Fatalf("len(Groups()) = %d, want %d", len(groups), len(want))
	}

	for i, name := range want {
		if groups[i].Name != name {
			t.Errorf("Groups()[%d].Name = %q, want %q", i, groups[i].Name, name)
		}
	}

	if again := r.Groups(); len(again) != len(groups) {
		t.Errorf("second Groups() call returned %d groups, want %d", len(again), len(groups))
	}
}

func TestRegistry_WithOverrides(t *testing.T) {
	r := diagnostics.NewRegistry(diagnostics.WithOverrides(map[string]diagnostics.Configuration{
		"Acme": {Title: "Acme Tools", Url: "tools"},
	}))

	g, _ := r.Add(diagnosticsUnit("Acme", "Show", "List"))

	if g.Title != "Acme Tools" {
		t.Errorf("Title = %q, want %q", g.Title, "Acme Tools")
	}
	if g.GetDefaultUrl() != "_fubu/tools" {
		t.Errorf("GetDefaultUrl() = %q, want %q", g.GetDefaultUrl(), "_fubu/tools")
	}
	if g.Name != "Acme" {
		t.Errorf("Name = %q, want %q", g.Name, "Acme")
	}
}

func TestRegistry_ConcurrentAdd(t *testing.T) {
	r := diagnostics.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Add(diagnosticsUnit(fmt.Sprintf("unit-%d", i), "Show"))
			_ = r.Groups()
		}(i)
	}
	wg.Wait()

	if r.Len() != 20 {
		t.Errorf("Len() = %d, want 20", r.Len())
	}
}

func TestRegistry_Add_InvalidUrl(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		url     string
		wantOK  bool
		wantUrl string
	}{
		{"slash falls back to name", "Runtime", "go/runtime", true, "runtime"},
		{"wildcard falls back to name", "Runtime", "{id}", true, "runtime"},
		{"space falls back to name", "Runtime", "go runtime", true, "runtime"},
		{"valid url kept", "Runtime", "rt", true, "rt"},
		{"invalid name skipped", "Go Runtime", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := diagnostics.NewRegistry(diagnostics.WithLogger(testLogger()))

			url := tt.url
			unit := diagnostics.NewUnit(tt.unit,
				diagnostics.WithTypes(diagnostics.Type{
					Name:    "StatusFubuDiagnostics",
					Actions: []diagnostics.Action{{Name: "Show", Handler: noop}},
				}),
				diagnostics.WithConfiguration(func() (diagnostics.Configuration, error) {
					return diagnostics.Configuration{Url: url}, nil
				}),
			)

			g, ok := r.Add(unit)
			if ok != tt.wantOK {
				t.Fatalf("Add() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if r.Len() != 0 {
					t.Errorf("Len() = %d, want 0", r.Len())
				}
				return
			}
			if g.Url != tt.wantUrl {
				t.Errorf("Url = %q, want %q", g.Url, tt.wantUrl)
			}
			if !diagnostics.ValidUrl(g.Url) {
				t.Errorf("stored Url %q is not valid", g.Url)
			}
		})
	}
}
