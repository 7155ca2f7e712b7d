package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestMoveCreatesDestinationDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mkv")
	dst := filepath.Join(dir, "library", "Title (2020)", "Title (2020).mkv")
	writeFile(t, src, "data")

	if err := Move(src, dst, false); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if Exists(src) {
		t.Fatal("source should be gone")
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "data" {
		t.Fatalf("destination content = %q, err=%v", data, err)
	}
}

func TestMoveRefusesExistingWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mkv")
	dst := filepath.Join(dir, "dst.mkv")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	if err := Move(src, dst, false); err == nil {
		t.Fatal("expected error for existing destination")
	}
	if data, _ := os.ReadFile(dst); string(data) != "old" {
		t.Fatalf("destination should be untouched, got %q", data)
	}
}

func TestMoveOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mkv")
	dst := filepath.Join(dir, "dst.mkv")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	if err := Move(src, dst, true); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "new" {
		t.Fatalf("destination not replaced, got %q", data)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.srt")
	dst := filepath.Join(dir, "sub", "b.srt")
	writeFile(t, src, "subtitle")

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "subtitle" {
		t.Fatalf("copy content = %q", data)
	}
	if !Exists(src) {
		t.Fatal("copy must not remove the source")
	}
}
