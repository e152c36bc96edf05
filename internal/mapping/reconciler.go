package mapping

import (
	"errors"
	"fmt"

	"rollcall/internal/services"
)

var (
	// ErrUnmappedSeason indicates no mapping exists for the local season.
	ErrUnmappedSeason = errors.New("season has no mapping")
	// ErrEpisodeOutOfRange indicates the rebased episode number falls outside
	// the mapping's declared range.
	ErrEpisodeOutOfRange = errors.New("episode outside mapped range")
)

// LocalEpisode is an episode position in local numbering, as extracted from a
// listing page.
type LocalEpisode struct {
	Season  int `json:"season"`
	Episode int `json:"episode"`
}

// Resolution is the provider-side position a local episode rebases to,
// together with the mapping that produced it.
type Resolution struct {
	Season  int           `json:"season"`
	Episode int           `json:"episode"`
	Mapping SeasonMapping `json:"mapping"`
}

// Resolve rebases a local episode onto provider numbering using the given
// mappings. Season zero (no season marker recovered) is treated as season one.
// Episodes that rebase outside the mapping's declared range fail with
// ErrEpisodeOutOfRange; open-ended ranges only enforce the lower bound.
func Resolve(mappings []SeasonMapping, local LocalEpisode) (*Resolution, error) {
	season := local.Season
	if season == 0 {
		season = 1
	}
	if local.Episode < 1 {
		return nil, services.Wrap(services.ErrValidation, "mapping", "resolve",
			fmt.Sprintf("local episode %d is not a valid episode number", local.Episode), nil)
	}

	var found *SeasonMapping
	for i := range mappings {
		if mappings[i].LocalSeason == season {
			found = &mappings[i]
			break
		}
	}
	if found == nil {
		return nil, services.Wrap(services.ErrMapping, "mapping", "resolve",
			fmt.Sprintf("local season %d", season), ErrUnmappedSeason)
	}

	episode := local.Episode + found.EpisodeOffset
	if !found.Contains(episode) {
		return nil, services.Wrap(services.ErrMapping, "mapping", "resolve",
			fmt.Sprintf("episode %d rebased to %d, range [%d, %d]",
				local.Episode, episode, found.FirstEpisode, found.LastEpisode),
			ErrEpisodeOutOfRange)
	}

	return &Resolution{
		Season:  found.ProviderSeason,
		Episode: episode,
		Mapping: *found,
	}, nil
}
