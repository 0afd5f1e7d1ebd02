package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DukeRupert/pageroute/internal/metrics"
	"github.com/DukeRupert/pageroute/internal/pagination"
)

// PageParam is the path wildcard holding the page number.
const PageParam = "page"

// CurrentPageMiddleware resolves the current page from the route's {page}
// wildcard and stores it in the request context.
type CurrentPageMiddleware struct {
	logger *slog.Logger
}

// NewCurrentPageMiddleware creates a new current page middleware.
func NewCurrentPageMiddleware(logger *slog.Logger) *CurrentPageMiddleware {
	return &CurrentPageMiddleware{
		logger: logger,
	}
}

// Handler returns middleware that sets the current page before the route's
// handler runs. Requests without a {page} wildcard are on page 1.
func (m *CurrentPageMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := parsePage(r.PathValue(PageParam))
		if !ok {
			m.logger.Debug("rejected page segment",
				"path", r.URL.Path,
				"value", r.PathValue(PageParam),
			)
			http.NotFound(w, r)
			return
		}

		metrics.PageRequested(page)
		if info := requestInfoFrom(r.Context()); info != nil {
			info.page = page
		}

		ctx := pagination.WithCurrentPage(r.Context(), page)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parsePage accepts digits only. An empty value and page 0 both mean the
// first page.
func parsePage(value string) (int, bool) {
	if value == "" {
		return 1, true
	}

	for _, c := range value {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	page, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	if page == 0 {
		return 1, true
	}
	return page, true
}
