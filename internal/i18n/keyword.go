// Package i18n resolves the localized path segment that marks a page number
// in paginated URLs.
package i18n

import (
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// pageKey is the catalog key of the page keyword.
const pageKey = "page"

// translations maps each supported language to its page keyword. English
// comes first so the matcher falls back to it.
var translations = []struct {
	tag     language.Tag
	keyword string
}{
	{language.English, "page"},
	{language.Dutch, "pagina"},
	{language.German, "seite"},
	{language.French, "page"},
	{language.Spanish, "pagina"},
	{language.Italian, "pagina"},
	{language.Portuguese, "pagina"},
}

var segmentPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Keywords resolves page keywords for locales.
type Keywords struct {
	catalog *catalog.Builder
	matcher language.Matcher
	tags    []language.Tag
}

// NewKeywords builds the keyword catalog.
func NewKeywords() *Keywords {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	tags := make([]language.Tag, 0, len(translations))
	for _, tr := range translations {
		// SetString only fails for malformed messages; the literals above are plain text.
		_ = b.SetString(tr.tag, pageKey, tr.keyword)
		tags = append(tags, tr.tag)
	}

	return &Keywords{
		catalog: b,
		matcher: language.NewMatcher(tags),
		tags:    tags,
	}
}

// Keyword returns the page keyword for locale, falling back to English.
// locale may be a BCP 47 tag ("nl", "de-AT") or an Accept-Language value.
func (k *Keywords) Keyword(locale string) string {
	tag := k.Match(locale)
	p := message.NewPrinter(tag, message.Catalog(k.catalog))
	return p.Sprintf(pageKey)
}

// Match returns the supported language closest to locale.
func (k *Keywords) Match(locale string) language.Tag {
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		return language.English
	}

	_, index, confidence := k.matcher.Match(desired...)
	if confidence == language.No {
		return language.English
	}
	return k.tags[index]
}

// Supported returns the languages with a translated keyword.
func (k *Keywords) Supported() []language.Tag {
	return append([]language.Tag(nil), k.tags...)
}

// ValidSegment reports whether keyword can be used as a literal path segment.
func ValidSegment(keyword string) bool {
	return segmentPattern.MatchString(keyword)
}
