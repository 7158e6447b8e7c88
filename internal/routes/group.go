package routes

import "net/http"

// Group represents a collection of routes with a common prefix.
// Child groups inherit the accumulated prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Entry is a flattened, fully prefixed route.
type Entry struct {
	Method  string   `json:"method" yaml:"method"`
	Pattern string   `json:"pattern" yaml:"pattern"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
