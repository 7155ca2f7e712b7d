package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(ErrProvider, "enrich", "fetch season", "season request failed", inner)
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("expected ErrProvider classification, got %v", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped cause to remain matchable")
	}
	want := "provider error: enrich: fetch season: season request failed: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("nil marker should default to transient, got %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(Wrap(ErrConfiguration, "organize", "ensure roots", "library root unwritable", nil)) {
		t.Error("configuration errors are fatal")
	}
	for _, marker := range []error{ErrValidation, ErrProvider, ErrStore, ErrMove, ErrNotFound, ErrTransient} {
		if IsFatal(marker) {
			t.Errorf("%v should not be fatal", marker)
		}
	}
}
