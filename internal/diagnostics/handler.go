package diagnostics

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/diagnostics-lab/internal/routes"
	diag "github.com/JaimeStill/diagnostics-lab/pkg/diagnostics"
	"github.com/JaimeStill/diagnostics-lab/pkg/handlers"
	"github.com/JaimeStill/diagnostics-lab/pkg/web"
)

//go:embed templates
var templateFS embed.FS

const (
	layout    = "diagnostics.html"
	indexPage = "index.html"
	groupPage = "group.html"
)

// Handler serves the diagnostics UI, the diagnostics API and every
// discovered diagnostics chain.
type Handler struct {
	registry *diag.Registry
	logger   *slog.Logger
	pages    *web.TemplateSet
}

// NewHandler parses the UI templates and creates a Handler over the registry.
func NewHandler(registry *diag.Registry, logger *slog.Logger) (*Handler, error) {
	pages, err := web.NewTemplateSet(
		templateFS,
		"templates/layouts/*.html",
		"templates/pages",
		"/"+diag.BasePath,
		indexPage, groupPage,
	)
	if err != nil {
		return nil, fmt.Errorf("diagnostics templates: %w", err)
	}

	return &Handler{
		registry: registry,
		logger:   logger,
		pages:    pages,
	}, nil
}

// Routes returns the route group for the diagnostics UI, the API and the
// chains of every registered group.
func (h *Handler) Routes() routes.Group {
	reserved := []routes.Group{
		{
			Prefix: "/" + diag.BasePath,
			Tags:   []string{"Diagnostics"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.Index},
				{Method: "GET", Pattern: "/{url}", Handler: h.Group},
			},
		},
		{
			Prefix:      "/api/diagnostics",
			Tags:        []string{"Diagnostics"},
			Description: "Diagnostics group metadata",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/groups", Handler: h.ListGroups},
				{Method: "GET", Pattern: "/groups/{name}", Handler: h.FindGroup},
			},
		},
	}

	return routes.Group{
		Tags:        []string{"Diagnostics"},
		Description: "Diagnostics navigation and routes",
		Children:    append(reserved, h.chainGroups(reserved)...),
	}
}

// chainGroups mounts each chain at its route pattern. Every pattern is first
// claimed on a scratch mux holding the reserved routes and the chains mounted
// so far. A chain the mux rejects is skipped with a warning.
func (h *Handler) chainGroups(reserved []routes.Group) []routes.Group {
	mux := http.NewServeMux()
	for _, group := range reserved {
		for _, route := range group.Routes {
			claim(mux, route.Method+" "+group.Prefix+route.Pattern)
		}
	}

	var groups []routes.Group

	for _, g := range h.registry.Groups() {
		group := routes.Group{
			Tags:        []string{g.Title},
			Description: g.Description,
		}

		for _, c := range g.Chains() {
			pattern := "/" + c.RoutePattern()
			key := c.Method() + " " + pattern

			if c.Handler() == nil {
				h.logger.Warn("diagnostics route skipped", "route", key, "group", g.Name, "error", "nil handler")
				continue
			}

			if err := claim(mux, key); err != nil {
				h.logger.Warn("diagnostics route skipped", "route", key, "group", g.Name, "error", err)
				continue
			}

			group.Routes = append(group.Routes, routes.Route{
				Method:  c.Method(),
				Pattern: pattern,
				Handler: c.Handler(),
			})
		}

		groups = append(groups, group)
	}

	return groups
}

// claim registers pattern on mux, converting the mux's registration panic
// into an error.
func claim(mux *http.ServeMux, pattern string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	mux.HandleFunc(pattern, func(http.ResponseWriter, *http.Request) {})
	return nil
}

// Index renders the navigation page listing every group.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, indexPage, web.PageData{
		Title: "Diagnostics",
		Data:  ListGroups(h.registry),
	})
}

// Group renders the page for the group whose Url matches the path.
func (h *Handler) Group(w http.ResponseWriter, r *http.Request) {
	url := r.PathValue("url")

	g, ok := h.registry.FindGroupByUrl(url)
	if !ok {
		err := fmt.Errorf("%w: %s", diag.ErrGroupNotFound, url)
		h.logger.Warn("diagnostics page not found", "url", url)
		http.Error(w, err.Error(), MapHTTPStatus(err))
		return
	}

	h.render(w, groupPage, web.PageData{
		Title: g.Title,
		Data:  NewGroupDetail(g),
	})
}

// ListGroups returns every group summary as JSON.
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ListGroups(h.registry))
}

// FindGroup returns one group with its links and chains as JSON.
func (h *Handler) FindGroup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	g, ok := h.registry.FindGroup(name)
	if !ok {
		err := fmt.Errorf("%w: %s", diag.ErrGroupNotFound, name)
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewGroupDetail(g))
}

func (h *Handler) render(w http.ResponseWriter, page string, data web.PageData) {
	if err := h.pages.Render(w, layout, page, data); err != nil {
		h.logger.Error("diagnostics render failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
