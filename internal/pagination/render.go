package pagination

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// PageLink is one page of the window.
type PageLink struct {
	Page    int
	URL     string
	Current bool
}

// Nav is everything needed to render navigation for one request.
type Nav struct {
	CurrentPage int
	Pages       []PageLink // ascending by page number
	Previous    *PageLink  // nil on the first page
	Next        *PageLink  // nil when there are no more pages
}

// RenderPageList renders nav as a <ul>. With additionalLinks the previous
// and next links, when present, wrap the page items.
func RenderPageList(nav Nav, style Style, additionalLinks bool) string {
	var b strings.Builder

	b.WriteString("<ul")
	if style.ul != "" {
		b.WriteString(` class="`)
		b.WriteString(templ.EscapeString(style.ul))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	if additionalLinks && nav.Previous != nil {
		writeControl(&b, style.li, style.previousA, nav.Previous.URL, style.previousLabel)
	}

	for _, link := range nav.Pages {
		current := link.Page == nav.CurrentPage
		b.WriteString("<li class='")
		b.WriteString(templ.EscapeString(style.itemClass(current)))
		b.WriteString("'><a class='")
		b.WriteString(templ.EscapeString(style.linkClass(current)))
		b.WriteString(`' href="`)
		b.WriteString(templ.EscapeString(link.URL))
		b.WriteString(`">`)
		b.WriteString(strconv.Itoa(link.Page))
		b.WriteString("</a></li>")
	}

	if additionalLinks && nav.Next != nil {
		writeControl(&b, style.li, style.nextA, nav.Next.URL, style.nextLabel)
	}

	b.WriteString("</ul>")
	return b.String()
}

func writeControl(b *strings.Builder, liClass, aClass, href, label string) {
	b.WriteString("<li class='")
	b.WriteString(templ.EscapeString(liClass))
	b.WriteString("'> <a class='")
	b.WriteString(templ.EscapeString(aClass))
	b.WriteString(`' href="`)
	b.WriteString(templ.EscapeString(href))
	b.WriteString(`">`)
	b.WriteString(label)
	b.WriteString("</a></li>")
}

// RenderRelLinks renders the rel="prev" and rel="next" link tags for the
// pages directly around the current one. Pages outside the window produce
// nothing.
func RenderRelLinks(nav Nav) string {
	var b strings.Builder

	for _, link := range nav.Pages {
		switch link.Page - nav.CurrentPage {
		case -1:
			writeRel(&b, "prev", link.URL)
		case 1:
			writeRel(&b, "next", link.URL)
		}
	}

	return b.String()
}

func writeRel(b *strings.Builder, rel, href string) {
	b.WriteString(`<link rel="`)
	b.WriteString(rel)
	b.WriteString(`" href="`)
	b.WriteString(templ.EscapeString(href))
	b.WriteString(`" />`)
}
