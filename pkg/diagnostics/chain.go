package diagnostics

import (
	"net/http"
	"strings"
)

// Chain is a discovered diagnostics action bound to its group.
type Chain struct {
	group   *Group
	typ     string
	action  Action
	IsIndex bool
}

func newChain(typ string, action Action) *Chain {
	return &Chain{
		typ:     typ,
		action:  action,
		IsIndex: action.Index,
	}
}

// Title returns the display title, falling back to the action name.
func (c *Chain) Title() string {
	if c.action.Title != "" {
		return c.action.Title
	}
	return c.action.Name
}

// Type returns the name of the endpoint type that declared the action.
func (c *Chain) Type() string {
	return c.typ
}

// Name returns the action name.
func (c *Chain) Name() string {
	return c.action.Name
}

// Method returns the HTTP method, GET when unset.
func (c *Chain) Method() string {
	if c.action.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(c.action.Method)
}

// Inputs returns the declared input names.
func (c *Chain) Inputs() []string {
	return c.action.Inputs
}

// Handler returns the action's handler.
func (c *Chain) Handler() http.HandlerFunc {
	return c.action.Handler
}

// Group returns the owning group, nil before the chain is bound.
func (c *Chain) Group() *Group {
	return c.group
}

// IsLink reports whether the chain can be rendered as a plain navigation link:
// a GET action with no inputs.
func (c *Chain) IsLink() bool {
	return c.Method() == http.MethodGet && len(c.action.Inputs) == 0
}

// RoutePattern renders the chain's URL pattern without a leading slash.
func (c *Chain) RoutePattern() string {
	if c.action.Pattern != "" {
		return strings.TrimPrefix(c.action.Pattern, "/")
	}

	segments := []string{BasePath}
	if c.group != nil {
		segments = append(segments, strings.ToLower(c.group.Url))
	}
	if seg := typeSegment(c.typ); seg != "" {
		segments = append(segments, seg)
	}
	segments = append(segments, strings.ToLower(c.action.Name))
	for _, input := range c.action.Inputs {
		segments = append(segments, "{"+input+"}")
	}

	return strings.Join(segments, "/")
}

func typeSegment(typ string) string {
	return strings.ToLower(strings.TrimSuffix(typ, Suffix))
}
