package services

import (
	"context"
	"testing"
)

func TestContextCarriers(t *testing.T) {
	ctx := context.Background()
	if _, ok := RunIDFromContext(ctx); ok {
		t.Fatal("empty context should carry no run id")
	}
	ctx = WithRunID(ctx, "run-1")
	ctx = WithFile(ctx, "/src/movie.mkv")
	ctx = WithStage(ctx, "enrich")

	if id, ok := RunIDFromContext(ctx); !ok || id != "run-1" {
		t.Fatalf("run id = %q, %v", id, ok)
	}
	if path, ok := FileFromContext(ctx); !ok || path != "/src/movie.mkv" {
		t.Fatalf("file = %q, %v", path, ok)
	}
	if stage, ok := StageFromContext(ctx); !ok || stage != "enrich" {
		t.Fatalf("stage = %q, %v", stage, ok)
	}
}

func TestEmptyValuesDoNotAnnotate(t *testing.T) {
	ctx := WithRunID(context.Background(), "")
	if _, ok := RunIDFromContext(ctx); ok {
		t.Fatal("empty run id should not be stored")
	}
}
