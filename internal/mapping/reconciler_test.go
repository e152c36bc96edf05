package mapping

import (
	"errors"
	"testing"

	"rollcall/internal/services"
)

func TestResolveRebasesEpisodes(t *testing.T) {
	mappings := []SeasonMapping{
		{SeriesID: "GDKHZEJ0K", LocalSeason: 1, ProviderSeason: 1, EpisodeOffset: 0, FirstEpisode: 1, LastEpisode: 24},
		{SeriesID: "GDKHZEJ0K", LocalSeason: 2, ProviderSeason: 1, EpisodeOffset: 24, FirstEpisode: 25, LastEpisode: 48},
	}

	tests := []struct {
		name        string
		local       LocalEpisode
		wantSeason  int
		wantEpisode int
	}{
		{"season one passthrough", LocalEpisode{Season: 1, Episode: 5}, 1, 5},
		{"season two rebased", LocalEpisode{Season: 2, Episode: 1}, 1, 25},
		{"season two upper bound", LocalEpisode{Season: 2, Episode: 24}, 1, 48},
		{"missing season defaults to one", LocalEpisode{Season: 0, Episode: 3}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(mappings, tt.local)
			if err != nil {
				t.Fatalf("Resolve(%+v): %v", tt.local, err)
			}
			if res.Season != tt.wantSeason || res.Episode != tt.wantEpisode {
				t.Errorf("Resolve(%+v) = S%dE%d, want S%dE%d",
					tt.local, res.Season, res.Episode, tt.wantSeason, tt.wantEpisode)
			}
		})
	}
}

func TestResolveFailures(t *testing.T) {
	mappings := []SeasonMapping{
		{SeriesID: "GDKHZEJ0K", LocalSeason: 2, ProviderSeason: 1, EpisodeOffset: 24, FirstEpisode: 25, LastEpisode: 48},
	}

	t.Run("unmapped season", func(t *testing.T) {
		_, err := Resolve(mappings, LocalEpisode{Season: 3, Episode: 1})
		if !errors.Is(err, ErrUnmappedSeason) {
			t.Errorf("error = %v, want ErrUnmappedSeason", err)
		}
		if !errors.Is(err, services.ErrMapping) {
			t.Errorf("error = %v, want services.ErrMapping marker", err)
		}
	})

	t.Run("episode past range", func(t *testing.T) {
		_, err := Resolve(mappings, LocalEpisode{Season: 2, Episode: 30})
		if !errors.Is(err, ErrEpisodeOutOfRange) {
			t.Errorf("error = %v, want ErrEpisodeOutOfRange (30+24=54 > 48)", err)
		}
	})

	t.Run("episode before range", func(t *testing.T) {
		broken := []SeasonMapping{
			{SeriesID: "X", LocalSeason: 1, ProviderSeason: 1, EpisodeOffset: 0, FirstEpisode: 10, LastEpisode: 20},
		}
		_, err := Resolve(broken, LocalEpisode{Season: 1, Episode: 2})
		if !errors.Is(err, ErrEpisodeOutOfRange) {
			t.Errorf("error = %v, want ErrEpisodeOutOfRange", err)
		}
	})

	t.Run("invalid episode number", func(t *testing.T) {
		_, err := Resolve(mappings, LocalEpisode{Season: 2, Episode: 0})
		if !errors.Is(err, services.ErrValidation) {
			t.Errorf("error = %v, want services.ErrValidation", err)
		}
	})
}

func TestResolveOpenEndedRange(t *testing.T) {
	mappings := []SeasonMapping{
		{SeriesID: "X", LocalSeason: 2, ProviderSeason: 2, EpisodeOffset: 12, FirstEpisode: 13},
	}

	res, err := Resolve(mappings, LocalEpisode{Season: 2, Episode: 500})
	if err != nil {
		t.Fatalf("Resolve with open-ended range: %v", err)
	}
	if res.Episode != 512 {
		t.Errorf("Episode = %d, want 512", res.Episode)
	}
}

func TestEpisodeCount(t *testing.T) {
	tests := []struct {
		name    string
		mapping SeasonMapping
		want    int
	}{
		{"bounded", SeasonMapping{FirstEpisode: 25, LastEpisode: 48}, 24},
		{"single episode", SeasonMapping{FirstEpisode: 5, LastEpisode: 5}, 1},
		{"open ended", SeasonMapping{FirstEpisode: 13}, 0},
		{"inverted", SeasonMapping{FirstEpisode: 10, LastEpisode: 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mapping.EpisodeCount(); got != tt.want {
				t.Errorf("EpisodeCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
