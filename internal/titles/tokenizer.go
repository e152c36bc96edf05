package titles

import (
	"regexp"
	"strconv"
	"strings"
)

// seasonPrefixes enumerates the accepted single-letter season markers. "S"
// covers the season/saison/staffel naming conventions, "T" covers temporada.
// Adding a letter here is all it takes to accept another locale's convention.
var seasonPrefixes = []string{"S", "T"}

// The season marker is a prefix letter, digits, and trailing whitespace. The
// episode marker is the letter E, digits, and a hyphen or colon separator;
// without the separator the digits are ordinary title text and must not be
// consumed.
var markerPattern = compileMarkerPattern(seasonPrefixes)

func compileMarkerPattern(prefixes []string) *regexp.Regexp {
	class := strings.Join(prefixes, "")
	return regexp.MustCompile(`(?i)^\s*(?:[` + class + `](\d{1,4})\s+)?(?:E(\d{1,4})\s*[-:]\s*)?(.*)$`)
}

// Tokens is the result of splitting a raw episode title.
type Tokens struct {
	Season     int
	HasSeason  bool
	Episode    int
	HasEpisode bool
	EpisodeRaw string
	Title      string
}

// Tokenize splits a raw title into optional season number, optional episode
// number, and the remaining title text. It never fails; at minimum the raw
// input (trimmed) is returned as the title.
func Tokenize(raw string) Tokens {
	tokens := Tokens{Title: strings.TrimSpace(raw)}

	m := markerPattern.FindStringSubmatch(raw)
	if m == nil {
		return tokens
	}

	if m[1] != "" {
		if season, err := strconv.Atoi(m[1]); err == nil {
			tokens.Season = season
			tokens.HasSeason = true
		}
	}
	if m[2] != "" {
		if episode, err := strconv.Atoi(m[2]); err == nil {
			tokens.Episode = episode
			tokens.HasEpisode = true
			tokens.EpisodeRaw = m[2]
		}
	}
	tokens.Title = strings.TrimSpace(m[3])
	return tokens
}
