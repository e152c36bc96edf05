package scrape

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"rollcall/internal/logging"
	"rollcall/internal/markup"
	"rollcall/internal/services"
	"rollcall/internal/textutil"
)

// Structural patterns target class-name prefixes: the site appends hashed
// suffixes that change between page revisions, so only the stable prefix is
// matched.
var (
	heroTitlePattern   = regexp.MustCompile(`(?s)<h1[^>]*class="[^"]*hero-heading-line[^"]*"[^>]*>(.*?)</h1>`)
	descriptionPattern = regexp.MustCompile(`(?s)<p[^>]*class="[^"]*expandable-section__text[^"]*"[^>]*>(.*?)</p>`)
	posterPattern      = regexp.MustCompile(`<img[^>]*class="[^"]*hero-poster[^"]*"[^>]*src="([^"]+)"`)
	seriesLinkPattern  = regexp.MustCompile(`/series/([A-Z0-9]{6,12})(?:/([a-z0-9][a-z0-9-]*))?`)
)

// providerTitleSuffixes are the branding suffixes the site appends to
// meta-tag titles, per locale variant.
var providerTitleSuffixes = []string{
	" - Watch on Crunchyroll",
	" | Crunchyroll",
	" - Crunchyroll",
}

func stripProviderSuffix(title string) string {
	for _, suffix := range providerTitleSuffixes {
		if strings.HasSuffix(title, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(title, suffix))
		}
	}
	return title
}

// Extractor pulls structured records out of raw markup. It holds no state
// beyond a logger; all methods are safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor constructs an Extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logging.NewComponentLogger(logger, "scrape")}
}

func seriesChains() []markup.Chain {
	return []markup.Chain{
		{
			Field: "title",
			Strategies: []markup.Strategy{
				{Name: "hero-heading", Extract: func(doc *markup.Document) (string, bool) {
					return doc.FindRaw(heroTitlePattern)
				}},
				{Name: "og-title", Extract: func(doc *markup.Document) (string, bool) {
					value, ok := doc.MetaProperty("og:title")
					if !ok {
						return "", false
					}
					value = stripProviderSuffix(value)
					return value, value != ""
				}},
			},
		},
		{
			Field: "description",
			Strategies: []markup.Strategy{
				{Name: "expandable-section", Extract: func(doc *markup.Document) (string, bool) {
					return doc.FindRaw(descriptionPattern)
				}},
				{Name: "og-description", Extract: func(doc *markup.Document) (string, bool) {
					return doc.MetaProperty("og:description")
				}},
			},
		},
		{
			Field: "poster",
			Strategies: []markup.Strategy{
				{Name: "hero-poster", Extract: func(doc *markup.Document) (string, bool) {
					return doc.FindRaw(posterPattern)
				}},
				{Name: "og-image", Extract: func(doc *markup.Document) (string, bool) {
					return doc.MetaProperty("og:image")
				}},
			},
		},
		{
			Field: "identity",
			Strategies: []markup.Strategy{
				{Name: "canonical-link", Extract: func(doc *markup.Document) (string, bool) {
					href, ok := doc.LinkHref("canonical")
					if !ok || !seriesLinkPattern.MatchString(href) {
						return "", false
					}
					return href, true
				}},
				{Name: "og-url", Extract: func(doc *markup.Document) (string, bool) {
					href, ok := doc.MetaProperty("og:url")
					if !ok || !seriesLinkPattern.MatchString(href) {
						return "", false
					}
					return href, true
				}},
			},
		},
	}
}

// Series extracts a series record from a series-page document. The title is
// mandatory: when every title strategy misses, no record is returned.
func (e *Extractor) Series(ctx context.Context, raw string) (*Series, error) {
	logger := logging.WithContext(ctx, e.logger)
	doc := markup.Parse(raw)

	values := make(map[string]string, 4)
	for _, chain := range seriesChains() {
		if value, ok := chain.Run(logger, doc); ok {
			values[chain.Field] = value
		}
	}

	title, ok := values["title"]
	if !ok {
		return nil, services.Wrap(services.ErrMandatoryField, "scrape", "series",
			"no title strategy matched this page variant", nil)
	}

	series := &Series{
		Title:       title,
		Description: values["description"],
	}
	if poster := values["poster"]; poster != "" {
		series.Poster = NewImageSet(poster)
	}
	if href := values["identity"]; href != "" {
		if m := seriesLinkPattern.FindStringSubmatch(href); m != nil {
			series.ID = m[1]
			series.Slug = m[2]
		}
	}
	if series.Slug == "" {
		series.Slug = textutil.Slugify(series.Title)
	}

	logger.Debug("series extracted",
		logging.String(logging.FieldSeriesID, series.ID),
		logging.String("title", series.Title))
	return series, nil
}

// Inspect evaluates every series-page strategy against the document and
// reports each hit or miss, plus card counts for the list selectors. This is
// the diagnostic view used by the inspect command when upstream markup
// drifts.
func (e *Extractor) Inspect(raw string) []markup.Outcome {
	doc := markup.Parse(raw)

	var outcomes []markup.Outcome
	for _, chain := range seriesChains() {
		outcomes = append(outcomes, chain.Trace(doc)...)
	}

	for _, cards := range []struct{ field, selector string }{
		{"episode-cards", episodeCardSelector},
		{"search-cards", searchCardSelector},
	} {
		count := countCards(doc, cards.selector)
		outcomes = append(outcomes, markup.Outcome{
			Field:    cards.field,
			Strategy: cards.selector,
			Value:    count,
			Hit:      count != "0",
		})
	}
	return outcomes
}
