package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DukeRupert/pageroute/internal/domain"
	"github.com/DukeRupert/pageroute/internal/middleware"
	"github.com/DukeRupert/pageroute/internal/pagination"
)

//go:embed templates/*.html
var templateFS embed.FS

var listingTemplate = template.Must(
	template.New("listing.html").Funcs(TemplateFuncs()).ParseFS(templateFS, "templates/listing.html"),
)

// Article is one entry of the demo collection.
type Article struct {
	ID    int
	Title string
	Tags  []string
}

// SeedArticles builds n demo articles. Every article carries one topic tag
// and one kind tag, both assigned round robin.
func SeedArticles(n int) []Article {
	topics := []string{"go", "web", "sql", "html"}
	kinds := []string{"news", "guide", "review"}

	articles := make([]Article, n)
	for i := range articles {
		articles[i] = Article{
			ID:    i + 1,
			Title: fmt.Sprintf("Article %d", i+1),
			Tags:  []string{topics[i%len(topics)], kinds[i%len(kinds)]},
		}
	}
	return articles
}

// ListingPageData is passed to the listing template.
type ListingPageData struct {
	Heading   string
	Articles  []Article
	Page      int
	LastPage  int
	PageList  template.HTML
	RelLinks  template.HTML
	RequestID string
}

// ListingHandler serves route-paginated article lists.
type ListingHandler struct {
	nav        *pagination.Navigator
	pages      *middleware.CurrentPageMiddleware
	logger     *slog.Logger
	articles   []Article
	perPage    int
	onEachSide int
	full       bool
}

// ListingConfig holds the settings of a ListingHandler.
type ListingConfig struct {
	Navigator     *pagination.Navigator
	Logger        *slog.Logger
	Articles      []Article
	PerPage       int
	OnEachSide    int
	FullFirstPage bool
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(cfg ListingConfig) *ListingHandler {
	return &ListingHandler{
		nav:        cfg.Navigator,
		pages:      middleware.NewCurrentPageMiddleware(cfg.Logger),
		logger:     cfg.Logger,
		articles:   cfg.Articles,
		perPage:    cfg.PerPage,
		onEachSide: cfg.OnEachSide,
		full:       cfg.FullFirstPage,
	}
}

// RegisterRoutes registers the paginated listing routes.
func (h *ListingHandler) RegisterRoutes(mux *http.ServeMux) {
	keyword := h.nav.Keyword()
	Paginate(mux, "/articles", keyword, h.pages, http.HandlerFunc(h.ListArticles))
	Paginate(mux, "/tags/{tag}", keyword, h.pages, http.HandlerFunc(h.ListByTag))
}

// ListArticles renders one page of all articles.
func (h *ListingHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	route := RouteFromRequest(r, "/articles")
	h.render(w, r, route, "Articles", h.articles)
}

// ListByTag renders one page of the articles carrying the {tag} value.
func (h *ListingHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")

	var tagged []Article
	for _, a := range h.articles {
		if slices.Contains(a.Tags, tag) {
			tagged = append(tagged, a)
		}
	}
	if len(tagged) == 0 {
		ErrorResponse(w, r, h.logger, domain.NotFound("listing.tag", fmt.Sprintf("No articles tagged %q", tag)))
		return
	}

	route := RouteFromRequest(r, "/tags/{tag}")
	heading := "Tagged " + cases.Title(language.English).String(tag)
	h.render(w, r, route, heading, tagged)
}

func (h *ListingHandler) render(w http.ResponseWriter, r *http.Request, route pagination.Route, heading string, items []Article) {
	ctx := r.Context()
	state := pagination.NewState(len(items), h.perPage, pagination.CurrentPage(ctx), h.onEachSide, route)

	if !h.nav.InRange(state) {
		NotFoundResponse(w, r, h.logger)
		return
	}

	// URL errors here are route configuration problems, not bad input
	nav, err := h.nav.Nav(state, h.full)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	pageList, err := templ.ToGoHTML(ctx, pagination.PageList(nav, h.nav.Style(), true))
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	relLinks, err := templ.ToGoHTML(ctx, pagination.RelLinks(nav))
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	start := state.Offset(h.perPage)
	end := min(start+h.perPage, len(items))

	data := ListingPageData{
		Heading:   heading,
		Articles:  items[start:end],
		Page:      state.CurrentPage,
		LastPage:  state.LastPage,
		PageList:  pageList,
		RelLinks:  relLinks,
		RequestID: middleware.RequestID(ctx),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := listingTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render listing", "error", err, "path", r.URL.Path)
	}
}
