package pagination

import (
	"fmt"
	"sort"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/DukeRupert/pageroute/internal/domain"
)

// Default style values.
const (
	DefaultItemClass     = "page-item"
	DefaultLinkClass     = "page-link"
	DefaultActiveClass   = "active"
	DefaultPreviousLabel = "&laquo;"
	DefaultNextLabel     = "&raquo;"
)

// StyleOptions customizes the rendered page list. Empty fields fall back
// to the defaults above.
type StyleOptions struct {
	UL            string // class of the <ul> wrapper, omitted when empty
	LI            string // class of every <li>
	A             string // class of page links
	PreviousA     string // class of the previous link
	NextA         string // class of the next link
	// ActiveA is added to the current link instead of "active" on its <li>.
	// Tailwind utilities in A that conflict with it are dropped, so
	// A="px-2 text-gray-500" with ActiveA="text-white" renders
	// "px-2 text-white". Other classes keep their order.
	ActiveA       string
	PreviousLabel string // raw HTML of the previous link
	NextLabel     string // raw HTML of the next link
}

// Style is a validated StyleOptions with defaults applied.
type Style struct {
	ul            string
	li            string
	a             string
	previousA     string
	nextA         string
	activeA       string
	activeLink    string // a merged with activeA
	previousLabel string
	nextLabel     string
}

// DefaultStyle returns the style used when no options are given.
func DefaultStyle() Style {
	s, _ := NewStyle(StyleOptions{})
	return s
}

// NewStyle validates opts and fills in defaults. Class values may not
// contain quotes or angle brackets since they are written into attributes
// verbatim.
func NewStyle(opts StyleOptions) (Style, error) {
	classes := map[string]string{
		"ul":         opts.UL,
		"li":         opts.LI,
		"a":          opts.A,
		"previous_a": opts.PreviousA,
		"next_a":     opts.NextA,
		"active_a":   opts.ActiveA,
	}
	for _, key := range sortedKeys(classes) {
		if strings.ContainsAny(classes[key], `"'<>`) {
			return Style{}, domain.Errorf(domain.EINVALID, "style.new", "class %q contains a quote or angle bracket", key)
		}
	}

	s := Style{
		ul:            strings.TrimSpace(opts.UL),
		li:            orDefault(opts.LI, DefaultItemClass),
		a:             orDefault(opts.A, DefaultLinkClass),
		previousA:     orDefault(opts.PreviousA, DefaultLinkClass),
		nextA:         orDefault(opts.NextA, DefaultLinkClass),
		activeA:       strings.TrimSpace(opts.ActiveA),
		previousLabel: orDefault(opts.PreviousLabel, DefaultPreviousLabel),
		nextLabel:     orDefault(opts.NextLabel, DefaultNextLabel),
	}
	if s.activeA != "" {
		s.activeLink = mergeClasses(s.a, s.activeA)
	}
	return s, nil
}

// mergeClasses joins base and extra, letting twmerge drop the utilities in
// base that extra overrides. twmerge does not preserve order, so the
// survivors are written back in their original order.
func mergeClasses(base, extra string) string {
	kept := make(map[string]bool)
	for _, class := range strings.Fields(twmerge.Merge(base, extra)) {
		kept[class] = true
	}

	var classes []string
	for _, class := range strings.Fields(base + " " + extra) {
		if kept[class] {
			classes = append(classes, class)
			delete(kept, class)
		}
	}
	return strings.Join(classes, " ")
}

// StyleFromMap reads style options from a loosely typed map using the keys
// ul, li, a, previous_a, next_a, active_a, previous_label and next_label.
func StyleFromMap(m map[string]string) (StyleOptions, error) {
	var opts StyleOptions
	fields := map[string]*string{
		"ul":             &opts.UL,
		"li":             &opts.LI,
		"a":              &opts.A,
		"previous_a":     &opts.PreviousA,
		"next_a":         &opts.NextA,
		"active_a":       &opts.ActiveA,
		"previous_label": &opts.PreviousLabel,
		"next_label":     &opts.NextLabel,
	}

	for _, key := range sortedKeys(m) {
		field, ok := fields[key]
		if !ok {
			return StyleOptions{}, domain.Errorf(domain.EINVALID, "style.map", "unknown style key %q", key)
		}
		*field = m[key]
	}
	return opts, nil
}

// itemClass returns the <li> class, marking the current page unless a
// link level active class is configured.
func (s Style) itemClass(current bool) string {
	if current && s.activeA == "" {
		return s.li + " " + DefaultActiveClass
	}
	return s.li
}

// linkClass returns the page link class. The current link gets the
// configured active class merged in.
func (s Style) linkClass(current bool) string {
	if current && s.activeA != "" {
		return s.activeLink
	}
	return s.a
}

func (s Style) String() string {
	return fmt.Sprintf("Style{ul=%q li=%q a=%q active_a=%q}", s.ul, s.li, s.a, s.activeA)
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
