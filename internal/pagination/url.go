package pagination

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/DukeRupert/pageroute/internal/domain"
)

// DefaultKeyword is the page segment used when no translation is supplied.
const DefaultKeyword = "page"

// PageQueryPlaceholder is the optional trailing placeholder a paginated
// route template may carry. It is dropped before the page segment is added.
const PageQueryPlaceholder = "{pageQuery?}"

// placeholderPattern matches {name}, {name?} and {name...}.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(\?|\.\.\.)?\}`)

// URLGenerator turns a route-relative path into an absolute URL.
type URLGenerator interface {
	To(path string) (string, error)
}

// BaseURLGenerator resolves paths against a fixed base URL. An empty base
// yields root-relative URLs.
type BaseURLGenerator struct {
	base string
}

// NewBaseURLGenerator validates base and returns a generator for it.
func NewBaseURLGenerator(base string) (*BaseURLGenerator, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return &BaseURLGenerator{}, nil
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, domain.Wrap(err, domain.EINVALID, "url.base", "base URL is not a valid URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, domain.Errorf(domain.EINVALID, "url.base", "base URL %q must be absolute", base)
	}

	return &BaseURLGenerator{base: base}, nil
}

// To joins path onto the base URL. Absolute URLs are returned unchanged.
func (g *BaseURLGenerator) To(path string) (string, error) {
	if path == "" {
		return "", domain.Invalid("url.to", "no route path to resolve")
	}

	u, err := url.Parse(path)
	if err != nil {
		return "", domain.Wrap(err, domain.EINVALID, "url.to", "route path is not a valid URL")
	}
	if u.IsAbs() {
		return path, nil
	}

	return g.base + "/" + strings.TrimLeft(path, "/"), nil
}

// AddPageQuery appends the page segment to u. The first page keeps its
// canonical URL unless full is set.
func AddPageQuery(u string, page int, full bool, keyword string) string {
	if page == 1 && !full {
		return u
	}

	return strings.Trim(u, "/") + "/" + keyword + "/" + strconv.Itoa(page)
}

// ParamNames returns the placeholder names in a route template, in order of
// appearance. The page placeholder is not included.
func ParamNames(template string) []string {
	template = strings.ReplaceAll(template, PageQueryPlaceholder, "")

	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// URLBuilder produces page URLs for route templates.
type URLBuilder struct {
	keyword string
	gen     URLGenerator
}

// NewURLBuilder returns a builder splicing keyword into page URLs.
func NewURLBuilder(keyword string, gen URLGenerator) *URLBuilder {
	if keyword == "" {
		keyword = DefaultKeyword
	}
	return &URLBuilder{
		keyword: keyword,
		gen:     gen,
	}
}

// Keyword returns the page segment literal.
func (b *URLBuilder) Keyword() string {
	return b.keyword
}

// AddPageQuery appends the builder's page segment to u.
func (b *URLBuilder) AddPageQuery(u string, page int, full bool) string {
	return AddPageQuery(u, page, full, b.keyword)
}

// PageURL returns the absolute URL of page for route. Errors from the
// generator are returned as is.
func (b *URLBuilder) PageURL(route Route, page int, full bool) (string, error) {
	if strings.TrimSpace(route.Path) == "" {
		return "", domain.Invalid("url.page", "route has no base path")
	}

	path := strings.ReplaceAll(route.Path, "/"+PageQueryPlaceholder, "")
	path = strings.ReplaceAll(path, PageQueryPlaceholder, "")
	path = b.AddPageQuery(path, page, full)

	path, err := bindParams(path, route.Params)
	if err != nil {
		return "", err
	}

	u, err := b.gen.To(path)
	if err != nil {
		return "", err
	}

	if route.RawQuery != "" {
		u += "?" + route.RawQuery
	}
	return u, nil
}

// bindParams substitutes bound values into path. Unbound optional
// placeholders are dropped along with their leading slash; an unbound
// required placeholder is an error.
func bindParams(path string, params map[string]string) (string, error) {
	var missing string
	dropped := false

	bound := placeholderPattern.ReplaceAllStringFunc(path, func(ph string) string {
		m := placeholderPattern.FindStringSubmatch(ph)
		name, modifier := m[1], m[2]

		value, ok := params[name]
		switch {
		case ok && modifier == "...":
			return escapeSegments(value)
		case ok:
			return url.PathEscape(value)
		case modifier == "?":
			dropped = true
			return ""
		default:
			if missing == "" {
				missing = name
			}
			return ph
		}
	})

	if missing != "" {
		return "", domain.Errorf(domain.EINVALID, "url.bind", "route parameter %q is not bound", missing)
	}

	if dropped {
		bound = collapseSlashes(bound)
	}
	return bound, nil
}

// collapseSlashes removes the empty segments a dropped placeholder leaves
// behind, keeping the scheme separator of absolute URLs intact.
func collapseSlashes(u string) string {
	prefix := ""
	if i := strings.Index(u, "://"); i >= 0 {
		prefix, u = u[:i+3], u[i+3:]
	}
	for strings.Contains(u, "//") {
		u = strings.ReplaceAll(u, "//", "/")
	}
	if trimmed := strings.TrimSuffix(u, "/"); trimmed != "" {
		u = trimmed
	}
	return prefix + u
}

func escapeSegments(value string) string {
	segments := strings.Split(value, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
