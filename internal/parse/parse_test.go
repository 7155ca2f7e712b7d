package parse

import (
	"path/filepath"
	"testing"

	"reelsort/internal/media"
)

func TestParseMovieReleaseName(t *testing.T) {
	got := Parse("Movie.Name.2022.1080p.BluRay.x264.mp4")
	want := media.Metadata{Title: "Movie Name", Year: 2022, Type: media.TypeMovie}
	if got != want {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseEpisodeMarker(t *testing.T) {
	got := Parse("Breaking Bad S05E10 720p HDTV.mkv")
	want := media.Metadata{Title: "Breaking Bad", Season: 5, Episode: 10, Type: media.TypeTV}
	if got != want {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseVariants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want media.Metadata
	}{
		{"dotted separators", "Show.Name.S01E02.WEB-DL.mkv",
			media.Metadata{Title: "Show Name", Season: 1, Episode: 2, Type: media.TypeTV}},
		{"nxnn marker", "show 2x05.avi",
			media.Metadata{Title: "show", Season: 2, Episode: 5, Type: media.TypeTV}},
		{"season episode words", "My Show Season 3 Episode 12.mkv",
			media.Metadata{Title: "My Show", Season: 3, Episode: 12, Type: media.TypeTV}},
		{"sep variant normalized", "Show.S03EP01.mkv",
			media.Metadata{Title: "Show", Season: 3, Episode: 1, Type: media.TypeTV}},
		{"year before marker", "Show 2019 S01E02.mkv",
			media.Metadata{Title: "Show", Year: 2019, Season: 1, Episode: 2, Type: media.TypeTV}},
		{"marker only", "S02E05.mkv",
			media.Metadata{Season: 2, Episode: 5, Type: media.TypeTV}},
		{"year in parens", "Movie Name (2022).mkv",
			media.Metadata{Title: "Movie Name", Year: 2022, Type: media.TypeMovie}},
		{"bracketed group dropped", "[Group] Movie Name 2021 720p.mkv",
			media.Metadata{Title: "Movie Name", Year: 2021, Type: media.TypeMovie}},
		{"numeric title keeps year-like token", "1917.mkv",
			media.Metadata{Title: "1917", Type: media.TypeMovie}},
		{"leading year kept in title", "2001 A Space Odyssey 1968.mkv",
			media.Metadata{Title: "2001 A Space Odyssey", Year: 1968, Type: media.TypeMovie}},
		{"unknown extension not stripped", "Movie Name 2020.x264",
			media.Metadata{Title: "Movie Name", Year: 2020, Type: media.TypeMovie}},
		{"resolution pair not an episode", "Movie Name 1920x1080.mkv",
			media.Metadata{Title: "Movie Name", Type: media.TypeMovie}},
		{"no metadata at all", "randomfile.mkv",
			media.Metadata{Title: "randomfile", Type: media.TypeMovie}},
		{"season without episode stays movie", "Show Name Season 2.mkv",
			media.Metadata{Title: "Show Name Season 2", Type: media.TypeMovie}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Parse(tc.in); got != tc.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{"", ".", "....", "!!!.mkv", "x", "s01e01e02.mkv"}
	for _, in := range inputs {
		got := Parse(in)
		if got.Type != media.TypeMovie && got.Type != media.TypeTV {
			t.Errorf("Parse(%q) returned untyped result %+v", in, got)
		}
	}
}

func TestParseWithContextFillsFromFolders(t *testing.T) {
	root := filepath.Join("/library", "incoming")

	path := filepath.Join(root, "Breaking Bad (2008)", "Season 5", "S05E10.mkv")
	got := ParseWithContext("S05E10.mkv", path, root)
	want := media.Metadata{Title: "Breaking Bad", Year: 2008, Season: 5, Episode: 10, Type: media.TypeTV}
	if got != want {
		t.Errorf("ParseWithContext() = %+v, want %+v", got, want)
	}
}

func TestParseWithContextSeasonFolderSuppliesSeason(t *testing.T) {
	root := "/library"
	path := filepath.Join(root, "Show Name", "S02", "Episode 05.mkv")
	got := ParseWithContext("Episode 05.mkv", path, root)
	if got.Title != "Show Name" {
		t.Errorf("title = %q, want %q", got.Title, "Show Name")
	}
	if got.Season != 2 {
		t.Errorf("season = %d, want 2", got.Season)
	}
}

func TestParseWithContextPlaceholderTitleYieldsToFolder(t *testing.T) {
	root := "/library"
	cases := []struct {
		file string
		want media.Metadata
	}{
		{"Part 1.mkv", media.Metadata{Title: "Movie Name", Year: 2022, Type: media.TypeMovie}},
		{"Disc 2.mkv", media.Metadata{Title: "Movie Name", Year: 2022, Type: media.TypeMovie}},
	}
	for _, tc := range cases {
		path := filepath.Join(root, "Movie Name (2022)", tc.file)
		if got := ParseWithContext(tc.file, path, root); got != tc.want {
			t.Errorf("ParseWithContext(%q) = %+v, want %+v", tc.file, got, tc.want)
		}
	}
}

func TestParseWithContextFilenameWins(t *testing.T) {
	root := "/library"
	path := filepath.Join(root, "Wrong Title (1999)", "Movie.Name.2022.1080p.mkv")
	got := ParseWithContext("Movie.Name.2022.1080p.mkv", path, root)
	want := media.Metadata{Title: "Movie Name", Year: 2022, Type: media.TypeMovie}
	if got != want {
		t.Errorf("ParseWithContext() = %+v, want %+v", got, want)
	}
}

func TestParseWithContextStopsAtScanRoot(t *testing.T) {
	root := filepath.Join("/srv", "Downloads")
	path := filepath.Join(root, "S01E01.mkv")
	got := ParseWithContext("S01E01.mkv", path, root)
	if got.Title != "" {
		t.Errorf("title = %q, want empty: scan root name must not be consulted", got.Title)
	}
}

func TestParseWithContextTrailingSeasonFolder(t *testing.T) {
	root := "/library"
	path := filepath.Join(root, "Breaking Bad S05", "E10.mkv")
	got := ParseWithContext("E10.mkv", path, root)
	if got.Title != "Breaking Bad" {
		t.Errorf("title = %q, want %q", got.Title, "Breaking Bad")
	}
	if got.Season != 5 {
		t.Errorf("season = %d, want 5", got.Season)
	}
}
