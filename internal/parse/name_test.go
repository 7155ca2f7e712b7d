package parse

import (
	"testing"

	"reelsort/internal/media"
)

func TestGenerateNewNameMovie(t *testing.T) {
	got := GenerateNewName(media.Enriched{
		Metadata: media.Metadata{Title: "Movie Name", Year: 2022, Type: media.TypeMovie},
	})
	if want := "Movie Name (2022)"; got != want {
		t.Errorf("GenerateNewName() = %q, want %q", got, want)
	}
}

func TestGenerateNewNameMovieWithoutYear(t *testing.T) {
	got := GenerateNewName(media.Enriched{
		Metadata: media.Metadata{Title: "Movie Name", Type: media.TypeMovie},
	})
	if want := "Movie Name"; got != want {
		t.Errorf("GenerateNewName() = %q, want %q", got, want)
	}
}

func TestGenerateNewNameEpisode(t *testing.T) {
	got := GenerateNewName(media.Enriched{
		Metadata:     media.Metadata{Title: "Breaking Bad", Season: 5, Episode: 10, Type: media.TypeTV},
		EpisodeTitle: "Buried",
	})
	if want := "Breaking Bad - Season 5 Episode 10 - Buried"; got != want {
		t.Errorf("GenerateNewName() = %q, want %q", got, want)
	}
}

func TestGenerateNewNameEpisodeWithoutEpisodeTitle(t *testing.T) {
	got := GenerateNewName(media.Enriched{
		Metadata: media.Metadata{Title: "Breaking Bad", Season: 5, Episode: 10, Type: media.TypeTV},
	})
	if want := "Breaking Bad - Season 5 Episode 10"; got != want {
		t.Errorf("GenerateNewName() = %q, want %q", got, want)
	}
}

func TestGenerateNewNameSanitizesProviderTitles(t *testing.T) {
	got := GenerateNewName(media.Enriched{
		Metadata: media.Metadata{Title: "What If...?", Year: 2021, Type: media.TypeMovie},
	})
	if want := "What If... (2021)"; got != want {
		t.Errorf("GenerateNewName() = %q, want %q", got, want)
	}
}
