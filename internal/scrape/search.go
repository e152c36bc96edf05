package scrape

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"rollcall/internal/logging"
	"rollcall/internal/markup"
	"rollcall/internal/textutil"
	"rollcall/internal/titles"
)

const searchCardSelector = ".search-result-item, [data-t='search-series-card']"

var searchTitleSelectors = []string{"h4", ".search-result-item__title", "a[href*='/series/']"}

// SearchResults extracts series candidates from a search-results page, in
// ranked document order. A candidate must yield both an identity and a title;
// anything less is dropped.
func (e *Extractor) SearchResults(ctx context.Context, raw string) []SearchResult {
	logger := logging.WithContext(ctx, e.logger)
	doc := markup.Parse(raw)

	var results []SearchResult
	doc.Each(searchCardSelector, func(index int, sel *goquery.Selection) {
		result, ok := buildSearchResult(logger, index, sel)
		if !ok {
			return
		}
		results = append(results, result)
	})

	logger.Debug("search results extracted", logging.Int("results", len(results)))
	return results
}

func buildSearchResult(logger *slog.Logger, index int, sel *goquery.Selection) (result SearchResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("search card extraction panicked, card skipped",
				logging.Int("card_index", index))
			result, ok = SearchResult{}, false
		}
	}()

	href, _ := sel.Find("a[href*='/series/']").First().Attr("href")
	m := seriesLinkPattern.FindStringSubmatch(href)
	if m == nil {
		logger.Debug("search card skipped: no resolvable identity",
			logging.Int("card_index", index))
		return SearchResult{}, false
	}
	result.ID = m[1]
	result.Slug = m[2]

	result.Title = titles.Tokenize(firstText(sel, searchTitleSelectors)).Title
	if result.Title == "" && result.Slug != "" {
		result.Title = textutil.TitleFromSlug(result.Slug)
	}
	if result.Title == "" {
		logger.Debug("search card skipped: no title",
			logging.Int("card_index", index))
		return SearchResult{}, false
	}

	if src := firstAttr(sel, []string{"img"}, "src", "data-src"); src != "" {
		result.Poster = NewImageSet(src)
	}

	return result, true
}
