package mapping_test

import (
	"context"
	"errors"
	"testing"

	"rollcall/internal/mapping"
	"rollcall/internal/services"
	"rollcall/internal/testsupport"
)

func TestStoreUpsertAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	created, err := store.Upsert(ctx, mapping.SeasonMapping{
		SeriesID:       "GDKHZEJ0K",
		LocalSeason:    2,
		ProviderSeason: 1,
		EpisodeOffset:  24,
		FirstEpisode:   25,
		LastEpisode:    48,
		Note:           "cour 2 listed as its own season",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated mapping ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := store.Get(ctx, "GDKHZEJ0K", 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.EpisodeOffset != 24 || got.ProviderSeason != 1 {
		t.Errorf("Get = %+v, want offset 24 provider season 1", got)
	}
	if got.Note != "cour 2 listed as its own season" {
		t.Errorf("Note = %q", got.Note)
	}
}

func TestStoreUpsertReplacesSameSeason(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first, err := store.Upsert(ctx, mapping.SeasonMapping{
		SeriesID: "GDKHZEJ0K", LocalSeason: 2, ProviderSeason: 1, EpisodeOffset: 24,
	})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	second, err := store.Upsert(ctx, mapping.SeasonMapping{
		SeriesID: "GDKHZEJ0K", LocalSeason: 2, ProviderSeason: 2, EpisodeOffset: 0,
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %q, want %q", second.ID, first.ID)
	}
	if second.ProviderSeason != 2 || second.EpisodeOffset != 0 {
		t.Errorf("second = %+v, want replaced values", second)
	}

	mappings, err := store.ListBySeries(ctx, "GDKHZEJ0K")
	if err != nil {
		t.Fatalf("ListBySeries: %v", err)
	}
	if len(mappings) != 1 {
		t.Errorf("got %d mappings, want 1", len(mappings))
	}
}

func TestStoreUpsertValidation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	tests := []struct {
		name string
		m    mapping.SeasonMapping
	}{
		{"missing series", mapping.SeasonMapping{LocalSeason: 1}},
		{"season below one", mapping.SeasonMapping{SeriesID: "X", LocalSeason: 0}},
		{"inverted range", mapping.SeasonMapping{SeriesID: "X", LocalSeason: 1, FirstEpisode: 10, LastEpisode: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Upsert(ctx, tt.m); !errors.Is(err, services.ErrValidation) {
				t.Errorf("Upsert(%+v) error = %v, want ErrValidation", tt.m, err)
			}
		})
	}
}

func TestStoreListOrdersBySeason(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, season := range []int{3, 1, 2} {
		if _, err := store.Upsert(ctx, mapping.SeasonMapping{
			SeriesID: "GDKHZEJ0K", LocalSeason: season, ProviderSeason: season,
		}); err != nil {
			t.Fatalf("Upsert season %d: %v", season, err)
		}
	}

	mappings, err := store.ListBySeries(ctx, "GDKHZEJ0K")
	if err != nil {
		t.Fatalf("ListBySeries: %v", err)
	}
	if len(mappings) != 3 {
		t.Fatalf("got %d mappings, want 3", len(mappings))
	}
	for i, m := range mappings {
		if m.LocalSeason != i+1 {
			t.Errorf("mappings[%d].LocalSeason = %d, want %d", i, m.LocalSeason, i+1)
		}
	}
}

func TestStoreDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.Upsert(ctx, mapping.SeasonMapping{
		SeriesID: "GDKHZEJ0K", LocalSeason: 1, ProviderSeason: 1,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := store.Delete(ctx, "GDKHZEJ0K", 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "GDKHZEJ0K", 1); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "GDKHZEJ0K", 1); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	store, err := mapping.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.Upsert(ctx, mapping.SeasonMapping{
		SeriesID: "GDKHZEJ0K", LocalSeason: 1, ProviderSeason: 1,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	if _, err := reopened.Get(ctx, "GDKHZEJ0K", 1); err != nil {
		t.Errorf("Get after reopen: %v", err)
	}
}
