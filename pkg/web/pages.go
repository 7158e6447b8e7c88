// Package web renders server-side HTML pages from pre-parsed templates.
// Templates are parsed once at startup so rendering never parses per request.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// PageData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
type TemplateSet struct {
	pages    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layout templates matched by layoutGlob and clones
// them once per page found under pageSubdir.
func NewTemplateSet(fsys fs.FS, layoutGlob, pageSubdir, basePath string, pages ...string) (*TemplateSet, error) {
	layouts, err := template.ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageSub, err := fs.Sub(fsys, pageSubdir)
	if err != nil {
		return nil, err
	}

	pageTemplates := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p, err)
		}
		if _, err := t.ParseFS(pageSub, p); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", p, err)
		}
		pageTemplates[p] = t
	}

	return &TemplateSet{
		pages:    pageTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path stamped into every PageData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Render executes the named layout template with the given page data.
// It sets the Content-Type header to text/html.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, pagePath string, data PageData) error {
	t, ok := ts.pages[pagePath]
	if !ok {
		return fmt.Errorf("template not found: %s", pagePath)
	}
	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, layoutName, data)
}
