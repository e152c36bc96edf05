package scrape

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"rollcall/internal/logging"
	"rollcall/internal/markup"
	"rollcall/internal/textutil"
	"rollcall/internal/titles"
)

// episodeCardSelector matches both the current card markup and the data-t
// test hooks older page revisions expose.
const episodeCardSelector = ".playable-card, [data-t='episode-card']"

var (
	watchLinkPattern   = regexp.MustCompile(`/watch/([A-Z0-9]{6,12})(?:/([a-z0-9][a-z0-9-]*))?`)
	labelNumberPattern = regexp.MustCompile(`(?i)\bE(\d{1,4})\b`)
)

// episodeTitleSelectors and episodeDescriptionSelectors are ordered fallback
// lists, newest markup shape first.
var (
	episodeTitleSelectors       = []string{".playable-card__title-link", "h4", "a[href*='/watch/']"}
	episodeDescriptionSelectors = []string{".playable-card__description", "p"}
)

// Episodes extracts every identifiable episode card from an episode-listing
// page, in document order. Cards without a resolvable identity are dropped;
// a failure inside one card does not affect the others. The returned slice is
// empty (never nil members) when nothing could be extracted.
func (e *Extractor) Episodes(ctx context.Context, raw string) []Episode {
	logger := logging.WithContext(ctx, e.logger)
	doc := markup.Parse(raw)

	var episodes []Episode
	doc.Each(episodeCardSelector, func(index int, sel *goquery.Selection) {
		episode, ok := buildEpisode(logger, index, sel)
		if !ok {
			return
		}
		episode.Sequence = len(episodes) + 1
		episodes = append(episodes, episode)
	})

	logger.Debug("episode listing extracted", logging.Int("episodes", len(episodes)))
	return episodes
}

// buildEpisode assembles one card. Identity comes from the watch link; the
// episode number cascades from title marker to accessibility label. A panic
// while scanning the card is recovered and the card alone is skipped.
func buildEpisode(logger *slog.Logger, index int, sel *goquery.Selection) (episode Episode, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("episode card extraction panicked, card skipped",
				logging.Int("card_index", index))
			episode, ok = Episode{}, false
		}
	}()

	link := sel.Find("a[href*='/watch/']").First()
	href, _ := link.Attr("href")
	m := watchLinkPattern.FindStringSubmatch(href)
	if m == nil {
		logger.Debug("episode card skipped: no resolvable identity",
			logging.Int("card_index", index))
		return Episode{}, false
	}
	episode.ID = m[1]
	episode.Slug = m[2]

	tokens := titles.Tokenize(firstText(sel, episodeTitleSelectors))
	episode.Title = tokens.Title
	if episode.Title == "" {
		episode.Title = textutil.TitleFromSlug(episode.Slug)
	}
	if tokens.HasSeason {
		episode.Season = tokens.Season
		episode.HasSeason = true
	}

	switch {
	case tokens.HasEpisode:
		episode.Number = tokens.Episode
		episode.NumberRaw = tokens.EpisodeRaw
		episode.HasNumber = true
		episode.NumberSource = NumberFromTitle
	default:
		if number, raw, found := labelNumber(sel, link); found {
			episode.Number = number
			episode.NumberRaw = raw
			episode.HasNumber = true
			episode.NumberSource = NumberFromLabel
			logger.Debug("episode number recovered from accessibility label",
				logging.Int("card_index", index),
				logging.Int("number", number))
		}
	}

	episode.Description = firstText(sel, episodeDescriptionSelectors)
	if src := firstAttr(sel, []string{"img"}, "src", "data-src"); src != "" {
		episode.Thumbnail = NewImageSet(src)
	}
	episode.DurationMS = cardDuration(sel)

	return episode, true
}

// labelNumber recovers an episode number from aria-label attributes, checking
// the watch link first and the card root second.
func labelNumber(sel, link *goquery.Selection) (int, string, bool) {
	for _, candidate := range []*goquery.Selection{link, sel} {
		label, exists := candidate.Attr("aria-label")
		if !exists {
			continue
		}
		if m := labelNumberPattern.FindStringSubmatch(label); m != nil {
			if number, err := strconv.Atoi(m[1]); err == nil {
				return number, m[1], true
			}
		}
	}
	return 0, "", false
}

// cardDuration reads the card's duration, preferring the millisecond
// attribute and falling back to the legacy seconds attribute.
func cardDuration(sel *goquery.Selection) int64 {
	if value, exists := sel.Attr("data-duration-ms"); exists {
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil && ms >= 0 {
			return ms
		}
	}
	if value, exists := sel.Attr("data-duration"); exists {
		if seconds, err := strconv.ParseInt(value, 10, 64); err == nil && seconds >= 0 {
			return seconds * 1000
		}
	}
	return 0
}

// firstText returns the first non-empty cleaned text among the selectors.
func firstText(sel *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		if text := markup.Clean(sel.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstAttr returns the first non-empty attribute value among the attrs of
// the first element matched by each selector.
func firstAttr(sel *goquery.Selection, selectors []string, attrs ...string) string {
	for _, selector := range selectors {
		found := sel.Find(selector).First()
		for _, attr := range attrs {
			if value, exists := found.Attr(attr); exists && value != "" {
				return value
			}
		}
	}
	return ""
}

func countCards(doc *markup.Document, selector string) string {
	count := 0
	doc.Each(selector, func(int, *goquery.Selection) { count++ })
	return strconv.Itoa(count)
}
