package diagnostics

import (
	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
)

// ChainInfo describes one diagnostics route.
type ChainInfo struct {
	Title   string   `json:"title" yaml:"title"`
	Type    string   `json:"type" yaml:"type"`
	Action  string   `json:"action" yaml:"action"`
	Method  string   `json:"method" yaml:"method"`
	Pattern string   `json:"pattern" yaml:"pattern"`
	Inputs  []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	IsLink  bool     `json:"is_link" yaml:"is_link"`
	IsIndex bool     `json:"is_index" yaml:"is_index"`
}

// GroupInfo summarizes a group for listings.
type GroupInfo struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Url         string `json:"url" yaml:"url"`
	DefaultUrl  string `json:"default_url" yaml:"default_url"`
}

// GroupDetail is a group with its links and every chain.
type GroupDetail struct {
	GroupInfo `yaml:",inline"`
	Links     []ChainInfo `json:"links" yaml:"links"`
	Chains    []ChainInfo `json:"chains" yaml:"chains"`
}

// NewChainInfo projects a chain.
func NewChainInfo(c *diag.Chain) ChainInfo {
	return ChainInfo{
		Title:   c.Title(),
		Type:    c.Type(),
		Action:  c.Name(),
		Method:  c.Method(),
		Pattern: "/" + c.RoutePattern(),
		Inputs:  c.Inputs(),
		IsLink:  c.IsLink(),
		IsIndex: c.IsIndex,
	}
}

// NewGroupInfo projects a group summary.
func NewGroupInfo(g *diag.Group) GroupInfo {
	return GroupInfo{
		Name:        g.Name,
		Title:       g.Title,
		Description: g.Description,
		Url:         g.Url,
		DefaultUrl:  "/" + g.GetDefaultUrl(),
	}
}

// NewGroupDetail projects a group with its links and chains.
func NewGroupDetail(g *diag.Group) GroupDetail {
	return GroupDetail{
		GroupInfo: NewGroupInfo(g),
		Links:     chainInfos(g.Links()),
		Chains:    chainInfos(g.Chains()),
	}
}

// ListGroups projects every group in the registry.
func ListGroups(r *diag.Registry) []GroupInfo {
	groups := r.Groups()
	result := make([]GroupInfo, 0, len(groups))
	for _, g := range groups {
		result = append(result, NewGroupInfo(g))
	}
	return result
}

func chainInfos(chains []*diag.Chain) []ChainInfo {
	result := make([]ChainInfo, 0, len(chains))
	for _, c := range chains {
		result = append(result, NewChainInfo(c))
	}
	return result
}
