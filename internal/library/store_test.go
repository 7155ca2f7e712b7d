package library_test

import (
	"context"
	"testing"

	"reelsort/internal/library"
	"reelsort/internal/testsupport"
)

func TestMovieRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	rec := library.MovieRecord{
		ID:       "tmdb-603",
		Title:    "The Matrix",
		Year:     1999,
		Plot:     "A hacker discovers reality is a simulation.",
		Genre:    "Science Fiction",
		Director: "Lana Wachowski, Lilly Wachowski",
		Actors:   "Keanu Reeves, Laurence Fishburne",
		Rating:   8.2,
	}
	if err := store.PutMovie(ctx, rec); err != nil {
		t.Fatalf("PutMovie: %v", err)
	}

	got, err := store.GetMovie(ctx, "tmdb-603")
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached movie, got nil")
	}
	if got.Title != rec.Title || got.Year != rec.Year || got.Director != rec.Director {
		t.Fatalf("unexpected record: %#v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be recorded")
	}
}

func TestGetMovieMissReturnsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	got, err := store.GetMovie(context.Background(), "tmdb-0")
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %#v", got)
	}
}

func TestLookupResolvesCachedTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if err := store.PutMovie(ctx, library.MovieRecord{ID: "tmdb-27205", Title: "Inception", Year: 2010}); err != nil {
		t.Fatalf("PutMovie: %v", err)
	}

	id, err := store.GetLookup(ctx, library.LookupKey("movie", "  INCEPTION ", 2010))
	if err != nil {
		t.Fatalf("GetLookup: %v", err)
	}
	if id != "tmdb-27205" {
		t.Fatalf("lookup id = %q, want tmdb-27205", id)
	}

	missing, err := store.GetLookup(ctx, library.LookupKey("movie", "Inception", 1999))
	if err != nil {
		t.Fatalf("GetLookup: %v", err)
	}
	if missing != "" {
		t.Fatalf("expected empty id on miss, got %q", missing)
	}
}

func TestEpisodeBatchRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if err := store.PutSeries(ctx, library.SeriesRecord{ID: "tmdb-1396", Title: "Breaking Bad", Year: 2008}); err != nil {
		t.Fatalf("PutSeries: %v", err)
	}

	batch := []library.EpisodeRecord{
		{SeriesID: "tmdb-1396", Season: 5, Episode: 9, Title: "Blood Money"},
		{SeriesID: "tmdb-1396", Season: 5, Episode: 10, Title: "Buried", Plot: "Walt scrambles."},
	}
	if err := store.PutEpisodeBatch(ctx, batch); err != nil {
		t.Fatalf("PutEpisodeBatch: %v", err)
	}

	got, err := store.GetEpisode(ctx, "tmdb-1396", 5, 10)
	if err != nil {
		t.Fatalf("GetEpisode: %v", err)
	}
	if got == nil || got.Title != "Buried" || got.Plot != "Walt scrambles." {
		t.Fatalf("unexpected episode: %#v", got)
	}

	missing, err := store.GetEpisode(ctx, "tmdb-1396", 5, 11)
	if err != nil {
		t.Fatalf("GetEpisode: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unfetched episode, got %#v", missing)
	}
}

func TestPutMovieRequiresID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if err := store.PutMovie(context.Background(), library.MovieRecord{Title: "No ID"}); err == nil {
		t.Fatal("expected error for record without id")
	}
}

func TestSecondOpenFailsWhileLocked(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.MustOpenStore(t, cfg)

	if _, err := library.Open(cfg); err == nil {
		t.Fatal("expected second open to fail while lock is held")
	}
}
