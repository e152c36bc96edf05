package markup

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document pairs the raw markup text with a parsed selector view of it.
// Strategies choose whichever representation suits the pattern: regexes over
// the raw text for obfuscated class prefixes, selectors for stable meta tags.
type Document struct {
	raw string
	doc *goquery.Document
}

// Parse wraps raw markup. Parsing is forgiving: even when the selector view
// cannot be built, raw-text strategies keep working.
func Parse(raw string) *Document {
	d := &Document{raw: raw}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		d.doc = doc
	}
	return d
}

// Raw returns the original markup text.
func (d *Document) Raw() string {
	if d == nil {
		return ""
	}
	return d.raw
}

// MetaProperty returns the content of <meta property="..."> if present and
// non-empty.
func (d *Document) MetaProperty(property string) (string, bool) {
	return d.metaContent("meta[property='" + property + "']")
}

// MetaName returns the content of <meta name="..."> if present and non-empty.
func (d *Document) MetaName(name string) (string, bool) {
	return d.metaContent("meta[name='" + name + "']")
}

func (d *Document) metaContent(selector string) (string, bool) {
	if d == nil || d.doc == nil {
		return "", false
	}
	content, ok := d.doc.Find(selector).First().Attr("content")
	content = strings.TrimSpace(content)
	return content, ok && content != ""
}

// FirstText returns the trimmed text of the first element matching selector.
func (d *Document) FirstText(selector string) (string, bool) {
	if d == nil || d.doc == nil {
		return "", false
	}
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	text := Clean(sel.Text())
	return text, text != ""
}

// FirstAttr returns the trimmed value of attr on the first element matching
// selector.
func (d *Document) FirstAttr(selector, attr string) (string, bool) {
	if d == nil || d.doc == nil {
		return "", false
	}
	value, ok := d.doc.Find(selector).First().Attr(attr)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// LinkHref returns the href of <link rel="..."> if present.
func (d *Document) LinkHref(rel string) (string, bool) {
	return d.FirstAttr("link[rel='"+rel+"']", "href")
}

// Each visits every element matching selector in document order.
func (d *Document) Each(selector string, fn func(index int, sel *goquery.Selection)) {
	if d == nil || d.doc == nil {
		return
	}
	d.doc.Find(selector).Each(fn)
}

// FindRaw applies a compiled pattern to the raw markup and returns the first
// capture group as text: inner tags stripped, entities decoded, whitespace
// collapsed.
func (d *Document) FindRaw(pattern *regexp.Regexp) (string, bool) {
	if d == nil {
		return "", false
	}
	m := pattern.FindStringSubmatch(d.raw)
	if len(m) < 2 {
		return "", false
	}
	value := Clean(StripTags(m[1]))
	return value, value != ""
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes markup tags from a captured fragment, leaving its text.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Clean decodes HTML entities and collapses whitespace runs (including
// non-breaking spaces) into single spaces. Regex-extracted fragments arrive
// with entities intact, so every strategy result passes through here before
// reaching a record.
func Clean(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}
