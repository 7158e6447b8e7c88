package diagnostics

import (
	"errors"
	"net/http"
)

var (
	ErrGroupNotFound = errors.New("diagnostics group not found")
	ErrConfiguration = errors.New("diagnostics configuration failed")
)

// MapHTTPStatus maps diagnostics errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrGroupNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
