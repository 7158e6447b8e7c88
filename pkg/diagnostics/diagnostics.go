// Package diagnostics discovers diagnostics endpoints in code units and groups
// them for the routing layer. A unit contributes a Group only when at least one
// of its endpoint types carries the Suffix naming convention.
package diagnostics

import "net/http"

const (
	// Suffix marks an endpoint type as a diagnostics endpoint.
	Suffix = "FubuDiagnostics"

	// ConfigurationName names the optional metadata record a unit may provide.
	ConfigurationName = "FubuDiagnosticsConfiguration"

	// BasePath is the URL prefix shared by every diagnostics route.
	BasePath = "_fubu"
)

// Unit is a loaded collection of endpoint types scanned for diagnostics.
type Unit interface {
	Name() string
	Types() []Type
}

// Configurer is implemented by units that supply display metadata for their group.
type Configurer interface {
	Configuration() (Configuration, error)
}

// Configuration carries optional display metadata. Empty fields keep the
// convention-derived defaults.
type Configuration struct {
	Title       string `toml:"title" json:"title,omitempty" yaml:"title,omitempty"`
	Description string `toml:"description" json:"description,omitempty" yaml:"description,omitempty"`
	Url         string `toml:"url" json:"url,omitempty" yaml:"url,omitempty"`
}

// Type is a named endpoint type exposing one or more actions.
type Type struct {
	Name    string
	Actions []Action
}

// Action is a single handler on an endpoint type.
type Action struct {
	Name    string
	Title   string
	Method  string
	Inputs  []string
	Index   bool
	Pattern string
	Handler http.HandlerFunc
}
