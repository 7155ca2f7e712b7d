package organizer_test

import (
	"path/filepath"
	"testing"

	"reelsort/internal/media"
	"reelsort/internal/organizer"
)

func movieItem(path string, title string, year int) organizer.Item {
	return organizer.Item{
		File: media.NewFile(path, media.RolePrimary),
		Meta: media.Enriched{Metadata: media.Metadata{Title: title, Year: year, Type: media.TypeMovie}},
	}
}

func TestPlanMovieDestination(t *testing.T) {
	roots := organizer.Roots{Movies: "/lib/movies", TV: "/lib/tv"}
	results := organizer.Plan([]organizer.Item{
		movieItem("/in/Movie.Name.2022.1080p.mkv", "Movie Name", 2022),
	}, roots)

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	want := filepath.Join("/lib/movies", "Movie Name (2022)", "Movie Name (2022).mkv")
	if results[0].PlannedPath != want {
		t.Errorf("planned = %q, want %q", results[0].PlannedPath, want)
	}
	if results[0].Action != media.ActionMove {
		t.Errorf("action = %q, want move", results[0].Action)
	}
}

func TestPlanEpisodeDestination(t *testing.T) {
	roots := organizer.Roots{Movies: "/lib/movies", TV: "/lib/tv"}
	item := organizer.Item{
		File: media.NewFile("/in/Breaking.Bad.S05E10.mkv", media.RolePrimary),
		Meta: media.Enriched{
			Metadata:     media.Metadata{Title: "Breaking Bad", Year: 2008, Season: 5, Episode: 10, Type: media.TypeTV},
			EpisodeTitle: "Buried",
		},
	}
	results := organizer.Plan([]organizer.Item{item}, roots)

	want := filepath.Join("/lib/tv", "Breaking Bad", "Season 5",
		"Breaking Bad (2008) - Season 5 Episode 10 - Buried.mkv")
	if results[0].PlannedPath != want {
		t.Errorf("planned = %q, want %q", results[0].PlannedPath, want)
	}
}

func TestPlanValidationReportsEveryMissingField(t *testing.T) {
	roots := organizer.Roots{Movies: "/lib/movies", TV: "/lib/tv"}
	item := organizer.Item{
		File: media.NewFile("/in/mystery.mkv", media.RolePrimary),
		Meta: media.Enriched{Metadata: media.Metadata{Type: media.TypeTV}},
	}
	results := organizer.Plan([]organizer.Item{item}, roots)

	result := results[0]
	if result.Action != media.ActionSkip {
		t.Fatalf("action = %q, want skip", result.Action)
	}
	if result.PlannedPath != result.OriginalPath {
		t.Errorf("skipped file planned path should equal original, got %q", result.PlannedPath)
	}
	if len(result.Errors) != 4 {
		t.Fatalf("errors = %v, want 4 entries (title, season, episode, episode title)", result.Errors)
	}
}

func TestPlanCompanionFollowsPrimary(t *testing.T) {
	roots := organizer.Roots{Movies: "/lib/movies", TV: "/lib/tv"}
	items := []organizer.Item{
		movieItem("/in/Movie.Name.2022.1080p.mkv", "Movie Name", 2022),
		{File: media.NewFile("/in/Movie.Name.2022.1080p.eng.srt", media.RoleCompanion)},
		{File: media.NewFile("/in/unrelated.srt", media.RoleCompanion)},
	}
	results := organizer.Plan(items, roots)

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	companion := results[1]
	want := filepath.Join("/lib/movies", "Movie Name (2022)", "Movie Name (2022).srt")
	if companion.PlannedPath != want {
		t.Errorf("companion planned = %q, want %q", companion.PlannedPath, want)
	}
	if companion.Action != media.ActionMove {
		t.Errorf("companion action = %q, want move", companion.Action)
	}

	orphan := results[2]
	if orphan.Action != media.ActionSkip {
		t.Errorf("orphan action = %q, want skip", orphan.Action)
	}
	if len(orphan.Errors) != 0 {
		t.Errorf("orphan skip must carry no errors, got %v", orphan.Errors)
	}
}

func TestPlanCompanionIgnoresSkippedPrimary(t *testing.T) {
	roots := organizer.Roots{Movies: "/lib/movies", TV: "/lib/tv"}
	items := []organizer.Item{
		{File: media.NewFile("/in/mystery.mkv", media.RolePrimary), Meta: media.Enriched{}},
		{File: media.NewFile("/in/mystery.srt", media.RoleCompanion)},
	}
	results := organizer.Plan(items, roots)

	if results[1].Action != media.ActionSkip {
		t.Errorf("companion of skipped primary should skip, got %q", results[1].Action)
	}
}

func TestPlanSanitizesIllegalCharacters(t *testing.T) {
	roots := organizer.Roots{Movies: "/lib/movies", TV: "/lib/tv"}
	results := organizer.Plan([]organizer.Item{
		movieItem("/in/movie.mkv", `Movie: The "Sequel"?`, 2022),
	}, roots)

	want := filepath.Join("/lib/movies", "Movie The Sequel (2022)", "Movie The Sequel (2022).mkv")
	if results[0].PlannedPath != want {
		t.Errorf("planned = %q, want %q", results[0].PlannedPath, want)
	}
}
