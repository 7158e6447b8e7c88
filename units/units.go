// Package units registers the built-in diagnostics units with the catalog.
// Import it for side effects.
package units

import (
	_ "github.com/JaimeStill/diagnostics-lab/units/database"
	_ "github.com/JaimeStill/diagnostics-lab/units/routes"
	_ "github.com/JaimeStill/diagnostics-lab/units/runtime"
)
