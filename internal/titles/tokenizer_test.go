package titles

import "testing"

func TestTokenizeMarkers(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantSeason  int
		hasSeason   bool
		wantEpisode int
		hasEpisode  bool
		wantTitle   string
	}{
		{"season and episode colon", "S2 E10: La Bataille Finale", 2, true, 10, true, "La Bataille Finale"},
		{"season and episode hyphen", "S2 E10 - La Bataille Finale", 2, true, 10, true, "La Bataille Finale"},
		{"temporada prefix", "T3 E7 - El Encuentro", 3, true, 7, true, "El Encuentro"},
		{"lowercase markers", "s1 e2: quiet beginnings", 1, true, 2, true, "quiet beginnings"},
		{"episode only", "E12 - Night Raid", 0, false, 12, true, "Night Raid"},
		{"season only", "S4 Endgame", 4, true, 0, false, "Endgame"},
		{"no markers", "The Long Goodbye", 0, false, 0, false, "The Long Goodbye"},
		{"separator tight", "E5-Breakaway", 0, false, 5, true, "Breakaway"},
		{"leading whitespace", "  S2 E1: Restart", 2, true, 1, true, "Restart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if got.HasSeason != tt.hasSeason || got.Season != tt.wantSeason {
				t.Errorf("season = (%d, %v), want (%d, %v)", got.Season, got.HasSeason, tt.wantSeason, tt.hasSeason)
			}
			if got.HasEpisode != tt.hasEpisode || got.Episode != tt.wantEpisode {
				t.Errorf("episode = (%d, %v), want (%d, %v)", got.Episode, got.HasEpisode, tt.wantEpisode, tt.hasEpisode)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestTokenizeMissingSeparatorKeepsDigits(t *testing.T) {
	// "E10" without a hyphen or colon is ordinary title text, not a marker.
	got := Tokenize("S2 E10 La Bataille Finale")
	if !got.HasSeason || got.Season != 2 {
		t.Errorf("season = (%d, %v), want (2, true)", got.Season, got.HasSeason)
	}
	if got.HasEpisode {
		t.Error("episode marker without separator must not be consumed")
	}
	if got.Title != "E10 La Bataille Finale" {
		t.Errorf("title = %q, want digits preserved", got.Title)
	}
}

func TestTokenizeSeasonNeedsTrailingWhitespace(t *testing.T) {
	got := Tokenize("T34")
	if got.HasSeason {
		t.Error("bare T34 must not parse as a season marker")
	}
	if got.Title != "T34" {
		t.Errorf("title = %q, want T34", got.Title)
	}
}

func TestTokenizeNeverLosesInput(t *testing.T) {
	inputs := []string{"", "   ", "::", "S E -", "Séisme à Tokyo"}
	for _, in := range inputs {
		got := Tokenize(in)
		if got.HasSeason || got.HasEpisode {
			// None of these carry valid markers.
			t.Errorf("Tokenize(%q) claimed markers: %+v", in, got)
		}
	}
	if got := Tokenize("Séisme à Tokyo"); got.Title != "Séisme à Tokyo" {
		t.Errorf("unicode title mangled: %q", got.Title)
	}
}

func TestTokenizeEpisodeRaw(t *testing.T) {
	got := Tokenize("E05 - Cold Open")
	if got.EpisodeRaw != "05" {
		t.Errorf("EpisodeRaw = %q, want 05", got.EpisodeRaw)
	}
	if got.Episode != 5 {
		t.Errorf("Episode = %d, want 5", got.Episode)
	}
}
