// Package pagination builds route-based pagination: the window of page
// numbers to show, the URL of every page in that window, and the HTML
// fragments that link them.
//
// Page numbers live in the path rather than the query string:
//
//	/articles           page 1
//	/articles/page/2    page 2
//
// Window, URL and render functions depend only on their inputs. Navigator
// and the templ components also record Prometheus counters for renders and
// out of range pages. The host application resolves the current page, the
// route template and its bound parameters, and hands them over as a State.
package pagination
