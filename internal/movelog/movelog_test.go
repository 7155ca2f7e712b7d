package movelog_test

import (
	"os"
	"path/filepath"
	"testing"

	"reelsort/internal/movelog"
)

func TestRecordAndEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "moves.jsonl")

	journal, err := movelog.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if journal.RunID() == "" {
		t.Fatal("expected a run id")
	}

	if err := journal.Record("/in/a.mkv", "/out/A (2020)/A (2020).mkv", "move"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := journal.Record("/in/b.mkv", "/out/B (2021)/B (2021).mkv", "overwrite"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := movelog.Entries(path)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].From != "/in/a.mkv" || entries[0].Action != "move" {
		t.Fatalf("unexpected first entry: %#v", entries[0])
	}
	if entries[1].RunID != journal.RunID() {
		t.Error("entries should carry the journal run id")
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}

func TestEntriesMissingFile(t *testing.T) {
	entries, err := movelog.Entries(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if entries != nil {
		t.Fatalf("expected nil entries, got %#v", entries)
	}
}

func TestEntriesSkipsTornLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.jsonl")
	journal, err := movelog.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := journal.Record("/in/a.mkv", "/out/a.mkv", "move"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("open for append: %v", err)
	}
	if _, err := f.WriteString(`{"run_id":"torn`); err != nil {
		t.Fatalf("append torn line: %v", err)
	}
	f.Close()

	entries, err := movelog.Entries(path)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (torn line skipped)", len(entries))
	}
}
