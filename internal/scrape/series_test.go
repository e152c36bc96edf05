package scrape

import (
	"context"
	"errors"
	"testing"

	"rollcall/internal/logging"
	"rollcall/internal/services"
)

const seriesPage = `<!DOCTYPE html>
<html>
<head>
<meta property="og:title" content="Blue Lock - Watch on Crunchyroll">
<meta property="og:description" content="Meta description.">
<meta property="og:image" content="https://img.example.com/keyart.jpg?width=320&amp;height=180">
<link rel="canonical" href="https://www.crunchyroll.com/series/GDKHZEJ0K/blue-lock">
</head>
<body>
<h1 class="hero-heading-line--xJa4f">Blue&nbsp;Lock <span>TV</span></h1>
<p class="expandable-section__text--aBc12">After a disastrous defeat, Yoichi Isagi joins Blue Lock.</p>
<img class="hero-poster--k2Lm9" src="https://img.example.com/poster.jpg?width=320&amp;height=180&amp;quality=60">
</body>
</html>`

func TestSeriesPrefersStructuralStrategies(t *testing.T) {
	e := NewExtractor(logging.NewNop())

	series, err := e.Series(context.Background(), seriesPage)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if got, want := series.Title, "Blue Lock TV"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if got, want := series.Description, "After a disastrous defeat, Yoichi Isagi joins Blue Lock."; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
	if got, want := series.ID, "GDKHZEJ0K"; got != want {
		t.Errorf("ID = %q, want %q", got, want)
	}
	if got, want := series.Slug, "blue-lock"; got != want {
		t.Errorf("Slug = %q, want %q", got, want)
	}
	if got, want := series.Poster.Source, "https://img.example.com/poster.jpg?width=320&height=180&quality=60"; got != want {
		t.Errorf("Poster.Source = %q, want %q", got, want)
	}
	if got, want := series.Poster.FullHD, "https://img.example.com/poster.jpg?width=1920&height=1080&quality=100"; got != want {
		t.Errorf("Poster.FullHD = %q, want %q", got, want)
	}
}

func TestSeriesFallsBackToMetaTags(t *testing.T) {
	page := `<html><head>
<meta property="og:title" content="Blue Lock - Watch on Crunchyroll">
<meta property="og:description" content="Meta description.">
<meta property="og:image" content="https://img.example.com/keyart.jpg">
<meta property="og:url" content="https://www.crunchyroll.com/series/GDKHZEJ0K/blue-lock">
</head><body><h1>unrelated heading</h1></body></html>`

	e := NewExtractor(logging.NewNop())
	series, err := e.Series(context.Background(), page)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if got, want := series.Title, "Blue Lock"; got != want {
		t.Errorf("Title = %q, want %q (branding suffix must be stripped)", got, want)
	}
	if got, want := series.Description, "Meta description."; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
	if got, want := series.ID, "GDKHZEJ0K"; got != want {
		t.Errorf("ID = %q, want %q", got, want)
	}
}

func TestSeriesSuffixVariants(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"watch suffix", "Blue Lock - Watch on Crunchyroll", "Blue Lock"},
		{"pipe suffix", "Blue Lock | Crunchyroll", "Blue Lock"},
		{"dash suffix", "Blue Lock - Crunchyroll", "Blue Lock"},
		{"no suffix", "Blue Lock", "Blue Lock"},
		{"suffix mid-title stays", "Watch on Crunchyroll Stories", "Watch on Crunchyroll Stories"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripProviderSuffix(tt.title); got != tt.want {
				t.Errorf("stripProviderSuffix(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSeriesMissingTitleFails(t *testing.T) {
	e := NewExtractor(logging.NewNop())

	_, err := e.Series(context.Background(), `<html><body><p>nothing useful</p></body></html>`)
	if err == nil {
		t.Fatal("expected error for page with no title strategy hit")
	}
	if !errors.Is(err, services.ErrMandatoryField) {
		t.Errorf("error = %v, want ErrMandatoryField", err)
	}
}

func TestSeriesSlugFallsBackToTitle(t *testing.T) {
	page := `<html><head>
<meta property="og:title" content="Spy x Family | Crunchyroll">
</head></html>`

	e := NewExtractor(logging.NewNop())
	series, err := e.Series(context.Background(), page)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if got, want := series.Slug, "spy-x-family"; got != want {
		t.Errorf("Slug = %q, want %q", got, want)
	}
}

func TestInspectReportsEveryStrategy(t *testing.T) {
	e := NewExtractor(logging.NewNop())

	outcomes := e.Inspect(seriesPage)

	hits := make(map[string]string)
	for _, o := range outcomes {
		if o.Hit {
			hits[o.Field+"/"+o.Strategy] = o.Value
		}
	}
	for _, key := range []string{"title/hero-heading", "title/og-title", "description/expandable-section", "poster/hero-poster", "identity/canonical-link"} {
		if _, ok := hits[key]; !ok {
			t.Errorf("expected strategy hit for %s, outcomes: %+v", key, outcomes)
		}
	}
}
