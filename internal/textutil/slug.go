package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify converts a display title into the lowercase-hyphenated path segment
// form used in source URLs. Letters and digits are kept, everything else
// collapses to a single hyphen. Returns "" for input with no usable runes.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	prevHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteRune('-')
				prevHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// TitleFromSlug reconstructs a readable title from a URL slug. It is lossy
// (casing and punctuation are gone from the slug) and exists only as a
// last-resort display value when no title could be extracted.
func TitleFromSlug(slug string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
	if cleaned == "" {
		return ""
	}
	return cases.Title(language.Und).String(cleaned)
}
