package diagnostics

import (
	"errors"
	"net/http"

	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
)

var ErrUnitNotFound = errors.New("diagnostics unit not registered")

// MapHTTPStatus maps catalog and registry errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnitNotFound) {
		return http.StatusNotFound
	}
	return diag.MapHTTPStatus(err)
}
