package library_test

import (
	"context"
	"testing"

	"reelsort/internal/library"
	"reelsort/internal/testsupport"
)

func TestCheckHealthReportsSchemaAndCounts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if err := store.PutMovie(ctx, library.MovieRecord{ID: "tmdb-603", Title: "The Matrix", Year: 1999}); err != nil {
		t.Fatalf("PutMovie: %v", err)
	}

	health, err := store.CheckHealth(ctx)
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if !health.Exists || !health.Readable {
		t.Fatalf("expected healthy database, got %#v", health)
	}
	if health.SchemaVersion != 1 {
		t.Errorf("SchemaVersion = %d, want 1", health.SchemaVersion)
	}
	if len(health.MissingTables) > 0 {
		t.Errorf("unexpected missing tables: %v", health.MissingTables)
	}
	if health.Movies != 1 || health.Series != 0 || health.Episodes != 0 {
		t.Errorf("unexpected counts: %#v", health)
	}
}
