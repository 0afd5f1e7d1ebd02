package pagination

import "context"

// Route describes the route a paginated collection is served from.
type Route struct {
	// Path is the route template, e.g. "/tags/{tag}". It may end in the
	// optional page placeholder "{pageQuery?}".
	Path string
	// Params holds the values bound to the template's placeholders for the
	// current request. It is never modified.
	Params map[string]string
	// RawQuery is the request's query string without the leading "?".
	RawQuery string
}

// State is the paginator snapshot a navigation is computed from.
//
// CurrentPage may fall outside [1, LastPage]. That is a valid state: the
// window is clamped and the caller decides whether to answer with a 404.
type State struct {
	CurrentPage  int
	LastPage     int
	OnEachSide   int
	HasMorePages bool
	Route        Route
}

// NewState builds a length-aware State from a total item count.
func NewState(total, perPage, current, onEachSide int, route Route) State {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}

	last := total / perPage
	if total%perPage != 0 {
		last++
	}
	if last < 1 {
		last = 1
	}

	return State{
		CurrentPage:  current,
		LastPage:     last,
		OnEachSide:   onEachSide,
		HasMorePages: current < last,
		Route:        route,
	}
}

// HasPages reports whether there is more than the first page to navigate.
func (s State) HasPages() bool {
	return s.CurrentPage != 1 || s.HasMorePages
}

// OutOfRange reports whether the current page lies outside [1, LastPage].
func (s State) OutOfRange() bool {
	return s.CurrentPage < 1 || s.CurrentPage > s.LastPage
}

// Window returns the page window for s.
func (s State) Window() Window {
	return NewWindow(s.CurrentPage, s.LastPage, s.OnEachSide)
}

// Offset returns the zero-based index of the first item on the current page.
func (s State) Offset(perPage int) int {
	if s.CurrentPage < 1 || perPage < 1 {
		return 0
	}
	return (s.CurrentPage - 1) * perPage
}

type currentPageKey struct{}

// WithCurrentPage returns a copy of ctx carrying the resolved current page.
func WithCurrentPage(ctx context.Context, page int) context.Context {
	return context.WithValue(ctx, currentPageKey{}, page)
}

// CurrentPage returns the page stored by WithCurrentPage, or 1.
func CurrentPage(ctx context.Context) int {
	if page, ok := ctx.Value(currentPageKey{}).(int); ok && page > 0 {
		return page
	}
	return 1
}
