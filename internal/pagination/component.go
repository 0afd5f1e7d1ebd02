package pagination

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/DukeRupert/pageroute/internal/metrics"
)

// PageList wraps RenderPageList as a templ component. Every render is
// counted in pagination_renders_total{kind="page_list"}.
func PageList(nav Nav, style Style, additionalLinks bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		metrics.PaginationRendersTotal.WithLabelValues("page_list").Inc()
		_, err := io.WriteString(w, RenderPageList(nav, style, additionalLinks))
		return err
	})
}

// RelLinks wraps RenderRelLinks as a templ component, for use in <head>.
func RelLinks(nav Nav) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		metrics.PaginationRendersTotal.WithLabelValues("rel_links").Inc()
		_, err := io.WriteString(w, RenderRelLinks(nav))
		return err
	})
}
