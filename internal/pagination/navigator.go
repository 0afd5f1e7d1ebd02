package pagination

import (
	"context"
	"log/slog"
	"strings"

	"github.com/a-h/templ"

	"github.com/DukeRupert/pageroute/internal/metrics"
)

// Navigator derives page links from a State and renders them. It holds no
// per-request state and is safe for concurrent use.
type Navigator struct {
	urls   *URLBuilder
	style  Style
	logger *slog.Logger
}

// NavigatorConfig holds the dependencies of a Navigator.
type NavigatorConfig struct {
	URLs   *URLBuilder
	Style  Style
	Logger *slog.Logger
}

// NewNavigator creates a Navigator. A zero Style means DefaultStyle.
func NewNavigator(cfg NavigatorConfig) *Navigator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	style := cfg.Style
	if style == (Style{}) {
		style = DefaultStyle()
	}

	return &Navigator{
		urls:   cfg.URLs,
		style:  style,
		logger: logger,
	}
}

// WithStyle returns a copy of n rendering with style.
func (n *Navigator) WithStyle(style Style) *Navigator {
	c := *n
	c.style = style
	return &c
}

// Style returns the style the navigator renders with.
func (n *Navigator) Style() Style {
	return n.style
}

// Keyword returns the page segment literal used in URLs.
func (n *Navigator) Keyword() string {
	return n.urls.Keyword()
}

// NextPage returns the page after the current one, if there are more pages.
func (n *Navigator) NextPage(s State) (int, bool) {
	if !s.HasMorePages {
		return 0, false
	}
	return s.CurrentPage + 1, true
}

// HasNextPage reports whether a next page exists.
func (n *Navigator) HasNextPage(s State) bool {
	_, ok := n.NextPage(s)
	return ok
}

// PreviousPage returns the page before the current one, if any.
func (n *Navigator) PreviousPage(s State) (int, bool) {
	if s.CurrentPage <= 1 {
		return 0, false
	}
	return s.CurrentPage - 1, true
}

// HasPreviousPage reports whether a previous page exists.
func (n *Navigator) HasPreviousPage(s State) bool {
	_, ok := n.PreviousPage(s)
	return ok
}

// IsCurrentPage reports whether page is the current page.
func (n *Navigator) IsCurrentPage(s State, page int) bool {
	return s.CurrentPage == page
}

// PageURL returns the URL of page for the route in s.
func (n *Navigator) PageURL(s State, page int, full bool) (string, error) {
	return n.urls.PageURL(s.Route, page, full)
}

// NextPageURL returns the URL of the next page, or "" when there is none.
func (n *Navigator) NextPageURL(s State) (string, error) {
	page, ok := n.NextPage(s)
	if !ok {
		return "", nil
	}
	return n.PageURL(s, page, false)
}

// PreviousPageURL returns the URL of the previous page, or "" when there is
// none. With full, page 1 keeps its page segment.
func (n *Navigator) PreviousPageURL(s State, full bool) (string, error) {
	page, ok := n.PreviousPage(s)
	if !ok {
		return "", nil
	}
	return n.PageURL(s, page, full)
}

// AllURLs returns a link for every page in the window, in ascending order.
// It returns nothing when the paginator has a single page.
func (n *Navigator) AllURLs(s State, full bool) ([]PageLink, error) {
	if !s.HasPages() {
		return nil, nil
	}

	pages := s.Window().Pages()
	links := make([]PageLink, 0, len(pages))
	for _, page := range pages {
		u, err := n.PageURL(s, page, full)
		if err != nil {
			return nil, err
		}
		links = append(links, PageLink{
			Page:    page,
			URL:     u,
			Current: n.IsCurrentPage(s, page),
		})
	}
	return links, nil
}

// InRange reports whether the current page of s lies within the collection.
// Pages outside it are counted and logged at debug level.
func (n *Navigator) InRange(s State) bool {
	if !s.OutOfRange() {
		return true
	}

	metrics.PaginationOutOfRange.Inc()
	n.logger.Debug("current page out of range",
		"page", s.CurrentPage,
		"last_page", s.LastPage,
		"path", s.Route.Path,
	)
	return false
}

// Nav computes the window links plus previous and next for s. The previous
// link honours full; the next link never needs it.
func (n *Navigator) Nav(s State, full bool) (Nav, error) {
	n.InRange(s)

	pages, err := n.AllURLs(s, full)
	if err != nil {
		return Nav{}, err
	}

	nav := Nav{
		CurrentPage: s.CurrentPage,
		Pages:       pages,
	}

	if page, ok := n.PreviousPage(s); ok {
		u, err := n.PreviousPageURL(s, full)
		if err != nil {
			return Nav{}, err
		}
		nav.Previous = &PageLink{Page: page, URL: u}
	}

	if page, ok := n.NextPage(s); ok {
		u, err := n.NextPageURL(s)
		if err != nil {
			return Nav{}, err
		}
		nav.Next = &PageLink{Page: page, URL: u}
	}

	return nav, nil
}

// RenderPageList renders the page list for s with the navigator's style.
func (n *Navigator) RenderPageList(s State, full, additionalLinks bool) (string, error) {
	nav, err := n.Nav(s, full)
	if err != nil {
		return "", err
	}

	return renderString(PageList(nav, n.style, additionalLinks))
}

// RenderRelLinks renders the rel="prev"/"next" link tags for s.
func (n *Navigator) RenderRelLinks(s State, full bool) (string, error) {
	nav, err := n.Nav(s, full)
	if err != nil {
		return "", err
	}

	return renderString(RelLinks(nav))
}

// RenderHTML renders a plain page list with the default style.
//
// Deprecated: use RenderPageList.
func (n *Navigator) RenderHTML(s State, full bool) (string, error) {
	return n.WithStyle(DefaultStyle()).RenderPageList(s, full, false)
}

func renderString(c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
