package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/pageroute/internal/metrics"
	"github.com/DukeRupert/pageroute/internal/pagination"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func newTestMux(t *testing.T, keyword string, gen pagination.URLGenerator) *http.ServeMux {
	t.Helper()

	if gen == nil {
		var err error
		gen, err = pagination.NewBaseURLGenerator("")
		require.NoError(t, err)
	}

	nav := pagination.NewNavigator(pagination.NavigatorConfig{
		URLs: pagination.NewURLBuilder(keyword, gen),
	})

	h := NewListingHandler(ListingConfig{
		Navigator:  nav,
		Logger:     slog.New(slog.DiscardHandler),
		Articles:   SeedArticles(100),
		PerPage:    10,
		OnEachSide: 2,
	})

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestListArticles_FirstPage(t *testing.T) {
	rec := get(t, newTestMux(t, "page", nil), "/articles")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<h2>Article 1</h2>")
	assert.Contains(t, body, "<h2>Article 10</h2>")
	assert.NotContains(t, body, "<h2>Article 11</h2>")
	assert.Contains(t, body, "Page 1 of 10")

	assert.Contains(t, body, `<link rel="next" href="/articles/page/2" />`)
	assert.NotContains(t, body, `rel="prev"`)
	assert.Contains(t, body, `<li class='page-item active'><a class='page-link' href="/articles">1</a></li>`)
	assert.Contains(t, body, `<a class='page-link' href="/articles/page/5">5</a>`)
	assert.NotContains(t, body, `/articles/page/6"`)
}

func TestListArticles_LaterPage(t *testing.T) {
	rec := get(t, newTestMux(t, "page", nil), "/articles/page/3")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<h2>Article 21</h2>")
	assert.Contains(t, body, "<h2>Article 30</h2>")
	assert.NotContains(t, body, "<h2>Article 20</h2>")
	assert.Contains(t, body, `<link rel="prev" href="/articles/page/2" /><link rel="next" href="/articles/page/4" />`)
	assert.Contains(t, body, `<li class='page-item active'><a class='page-link' href="/articles/page/3">3</a></li>`)
}

func TestListArticles_KeepsQueryString(t *testing.T) {
	rec := get(t, newTestMux(t, "page", nil), "/articles/page/2?sort=new")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/articles/page/3?sort=new"`)
	assert.Contains(t, rec.Body.String(), `href="/articles?sort=new"`)
}

func TestListArticles_OutOfRange(t *testing.T) {
	mux := newTestMux(t, "page", nil)

	assert.Equal(t, http.StatusOK, get(t, mux, "/articles/page/10").Code)
	assert.Equal(t, http.StatusNotFound, get(t, mux, "/articles/page/11").Code)
	assert.Equal(t, http.StatusNotFound, get(t, mux, "/articles/page/two").Code)
}

func TestListArticles_RecordsPaginationMetrics(t *testing.T) {
	mux := newTestMux(t, "page", nil)

	lists := counterValue(t, metrics.PaginationRendersTotal.WithLabelValues("page_list"))
	rels := counterValue(t, metrics.PaginationRendersTotal.WithLabelValues("rel_links"))
	outOfRange := counterValue(t, metrics.PaginationOutOfRange)

	require.Equal(t, http.StatusOK, get(t, mux, "/articles/page/2").Code)
	assert.Equal(t, 1.0, counterValue(t, metrics.PaginationRendersTotal.WithLabelValues("page_list"))-lists)
	assert.Equal(t, 1.0, counterValue(t, metrics.PaginationRendersTotal.WithLabelValues("rel_links"))-rels)
	assert.Equal(t, 0.0, counterValue(t, metrics.PaginationOutOfRange)-outOfRange)

	require.Equal(t, http.StatusNotFound, get(t, mux, "/articles/page/99").Code)
	assert.Equal(t, 1.0, counterValue(t, metrics.PaginationOutOfRange)-outOfRange)
	assert.Equal(t, 1.0, counterValue(t, metrics.PaginationRendersTotal.WithLabelValues("page_list"))-lists)
}

func TestListByTag(t *testing.T) {
	mux := newTestMux(t, "page", nil)

	rec := get(t, mux, "/tags/go/page/2")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Tagged Go")
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, `<link rel="prev" href="/tags/go" /><link rel="next" href="/tags/go/page/3" />`)

	assert.Equal(t, http.StatusNotFound, get(t, mux, "/tags/rust").Code)
	assert.Equal(t, http.StatusNotFound, get(t, mux, "/tags/go/page/4").Code)
}

func TestListArticles_TranslatedKeyword(t *testing.T) {
	mux := newTestMux(t, "pagina", nil)

	rec := get(t, mux, "/articles/pagina/2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<link rel="next" href="/articles/pagina/3" />`)

	assert.Equal(t, http.StatusNotFound, get(t, mux, "/articles/page/1").Code)
}

type brokenGenerator struct{}

func (brokenGenerator) To(string) (string, error) {
	return "", errors.New("no current route")
}

func TestListArticles_RouteConfigurationError(t *testing.T) {
	rec := get(t, newTestMux(t, "page", brokenGenerator{}), "/articles/page/2")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "no current route")
}

func TestRouteFromRequest(t *testing.T) {
	var got pagination.Route
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{user}/posts", func(w http.ResponseWriter, r *http.Request) {
		got = RouteFromRequest(r, "/users/{user}/posts/{lang?}")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/users/ada/posts?q=go", nil))

	assert.Equal(t, "/users/{user}/posts/{lang?}", got.Path)
	assert.Equal(t, map[string]string{"user": "ada"}, got.Params)
	assert.Equal(t, "q=go", got.RawQuery)
}

func TestSeedArticles(t *testing.T) {
	articles := SeedArticles(5)

	require.Len(t, articles, 5)
	assert.Equal(t, 1, articles[0].ID)
	assert.Equal(t, []string{"go", "news"}, articles[0].Tags)
	assert.Equal(t, []string{"go", "guide"}, articles[4].Tags)
}
