package mapping

import "time"

// SeasonMapping rebases one local season onto the provider's numbering.
// EpisodeOffset is added to every local episode number. FirstEpisode and
// LastEpisode bound the valid provider numbers; a LastEpisode of zero leaves
// the range open-ended and disables the upper check.
type SeasonMapping struct {
	ID             string    `json:"id"`
	SeriesID       string    `json:"series_id"`
	LocalSeason    int       `json:"local_season"`
	ProviderSeason int       `json:"provider_season"`
	EpisodeOffset  int       `json:"episode_offset"`
	FirstEpisode   int       `json:"first_episode,omitempty"`
	LastEpisode    int       `json:"last_episode,omitempty"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EpisodeCount returns the number of episodes the mapping's range covers, or
// zero when the range is open-ended.
func (m SeasonMapping) EpisodeCount() int {
	if m.LastEpisode == 0 || m.LastEpisode < m.FirstEpisode {
		return 0
	}
	return m.LastEpisode - m.FirstEpisode + 1
}

// Contains reports whether a provider episode number falls inside the
// mapping's range. Open-ended ranges accept everything at or above
// FirstEpisode.
func (m SeasonMapping) Contains(providerEpisode int) bool {
	if providerEpisode < m.FirstEpisode {
		return false
	}
	return m.LastEpisode == 0 || providerEpisode <= m.LastEpisode
}
