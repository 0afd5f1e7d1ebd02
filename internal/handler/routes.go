package handler

import (
	"net/http"
	"strings"

	"github.com/DukeRupert/pageroute/internal/middleware"
	"github.com/DukeRupert/pageroute/internal/pagination"
)

// Paginate registers h for GET pattern and for its paged variant
// pattern/{keyword}/{page}. Only the given keyword is routed, so once it is
// translated the English "page" URLs answer 404.
func Paginate(mux *http.ServeMux, pattern, keyword string, pages *middleware.CurrentPageMiddleware, h http.Handler) {
	pattern = strings.TrimRight(pattern, "/")
	wrapped := pages.Handler(h)

	mux.Handle("GET "+pattern, wrapped)
	mux.Handle("GET "+pattern+"/"+keyword+"/{"+middleware.PageParam+"}", wrapped)
}

// RouteFromRequest binds the placeholders of template from the request's
// path values and carries over its raw query string.
func RouteFromRequest(r *http.Request, template string) pagination.Route {
	names := pagination.ParamNames(template)
	params := make(map[string]string, len(names))
	for _, name := range names {
		if v := r.PathValue(name); v != "" {
			params[name] = v
		}
	}

	return pagination.Route{
		Path:     template,
		Params:   params,
		RawQuery: r.URL.RawQuery,
	}
}
