package config_test

import (
	"testing"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
	"github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
)

func TestDiagnosticsConfig_Merge(t *testing.T) {
	base := &config.DiagnosticsConfig{
		Groups: map[string]diagnostics.Configuration{
			"runtime": {Title: "Runtime", Description: "Go runtime"},
		},
	}

	overlay := &config.DiagnosticsConfig{
		Groups: map[string]diagnostics.Configuration{
			"runtime": {Url: "rt"},
			"routes":  {Title: "Routes"},
		},
	}

	base.Merge(overlay)

	runtime := base.Groups["runtime"]
	if runtime.Title != "Runtime" || runtime.Description != "Go runtime" || runtime.Url != "rt" {
		t.Errorf("runtime = %+v, want merged fields", runtime)
	}

	if base.Groups["routes"].Title != "Routes" {
		t.Errorf("routes Title = %q, want %q", base.Groups["routes"].Title, "Routes")
	}

	if base.Disabled {
		t.Error("Disabled = true, want false")
	}
}

func TestDiagnosticsConfig_Merge_NilBase(t *testing.T) {
	base := &config.DiagnosticsConfig{}
	base.Merge(&config.DiagnosticsConfig{
		Disabled: true,
		Groups:   map[string]diagnostics.Configuration{"runtime": {Title: "Runtime"}},
	})

	if !base.Disabled {
		t.Error("Disabled = false, want true")
	}
	if base.Groups["runtime"].Title != "Runtime" {
		t.Errorf("runtime Title = %q, want %q", base.Groups["runtime"].Title, "Runtime")
	}
}

func TestDiagnosticsConfig_Finalize_InvalidUrl(t *testing.T) {
	cfg := &config.DiagnosticsConfig{
		Groups: map[string]diagnostics.Configuration{
			"runtime": {Url: "go/runtime"},
		},
	}

	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() succeeded with slash in url, want error")
	}
}
