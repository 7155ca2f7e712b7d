package parse

import (
	"path/filepath"
	"strings"

	"reelsort/internal/media"
)

// Parse extracts structured metadata from a single filename. The input may
// include an extension; only recognized media extensions are stripped, so a
// trailing ".x264" token is not mistaken for one. Parsing never fails: the
// weakest outcome is a movie guess with an empty title.
func Parse(filename string) media.Metadata {
	return finalize(parseRaw(filename))
}

// ParseWithContext parses a filename and fills fields it could not extract
// from the name itself using ancestor directory names. At most two ancestors
// of the file's directory are consulted, and the walk never crosses above
// scanRoot, so library-root folder names cannot leak into titles. Folder
// context is merged before the season/episode pairing invariant is applied,
// so a season folder can complete a bare "Episode 05" filename.
func ParseWithContext(filename, fullPath, scanRoot string) media.Metadata {
	meta := parseRaw(filename)

	root := filepath.Clean(scanRoot)
	dir := filepath.Dir(filepath.Clean(fullPath))

	var ancestors []string
	for i := 0; i < 2; i++ {
		if dir == root || dir == "." || dir == string(filepath.Separator) {
			break
		}
		ancestors = append(ancestors, filepath.Base(dir))
		dir = filepath.Dir(dir)
	}

	var titleCandidate string
	var yearCandidate int
	for _, name := range ancestors {
		if m := reSeasonFolder.FindStringSubmatch(name); m != nil {
			if meta.Season == 0 {
				meta.Season = atoi(m[2])
			}
			continue
		}
		folder := parseFolder(name)
		if folder.Season > 0 && meta.Season == 0 {
			meta.Season = folder.Season
		}
		if folder.Title != "" {
			// Ancestors are visited nearest-first; keep overwriting so the
			// candidate closest to the scan root wins.
			titleCandidate = folder.Title
			if folder.Year > 0 {
				yearCandidate = folder.Year
			}
		}
	}

	// A marker-only title ("Part 1", "Disc 2") never blocks a folder title.
	if meta.Title != "" && rePlaceholderTitle.MatchString(meta.Title) {
		meta.Title = ""
	}
	if meta.Title == "" && titleCandidate != "" {
		meta.Title = titleCandidate
		if meta.Year == 0 && yearCandidate > 0 {
			meta.Year = yearCandidate
		}
	}
	return finalize(meta)
}

// parseRaw runs the rule table without enforcing the season/episode pairing
// invariant, so callers with folder context can complete partial markers.
func parseRaw(filename string) media.Metadata {
	base := stripKnownExtension(filepath.Base(filename))
	base = reEpisodeVariant.ReplaceAllString(base, "S${1}E${2}")

	for _, rule := range Rules {
		idx := rule.Pattern.FindStringSubmatchIndex(base)
		if idx == nil {
			continue
		}
		return rule.Extract(base, idx)
	}

	if m := reBareEpisode.FindStringSubmatch(base); m != nil {
		return media.Metadata{Episode: atoi(m[1])}
	}
	if m := reSeasonFolder.FindStringSubmatch(base); m != nil {
		return media.Metadata{Season: atoi(m[2])}
	}

	title, year := titleAndYear(base)
	return media.Metadata{Title: title, Year: year, Type: media.TypeMovie}
}

// parseFolder extracts what it can from a directory name: a trailing season
// marker ("Breaking Bad S05") yields both a title and a season; otherwise
// the name is treated like a filename segment.
func parseFolder(name string) media.Metadata {
	if m := reTrailingSeason.FindStringSubmatch(name); m != nil {
		season := atoi(m[2])
		if season == 0 {
			season = atoi(m[3])
		}
		title, year := titleAndYear(strings.TrimSuffix(name, m[0]))
		if rePlaceholderTitle.MatchString(title) {
			title = ""
		}
		return media.Metadata{Title: title, Year: year, Season: season}
	}
	title, year := titleAndYear(name)
	if rePlaceholderTitle.MatchString(title) {
		title = ""
	}
	return media.Metadata{Title: title, Year: year}
}

// finalize applies the invariants every parse result must satisfy: a
// trailing year embedded in the title is pulled out, marker-only titles are
// discarded, and the type follows from whether an episode was extracted.
func finalize(meta media.Metadata) media.Metadata {
	if meta.Year == 0 && meta.Title != "" {
		if m := reTrailingYear.FindStringSubmatch(meta.Title); m != nil && m[1] != "" {
			meta.Title = strings.Trim(m[1], "- ")
			meta.Year = atoi(m[2])
		}
	}
	if meta.Title != "" && rePlaceholderTitle.MatchString(meta.Title) {
		meta.Title = ""
	}
	if meta.HasEpisode() {
		meta.Type = media.TypeTV
	} else {
		meta.Season = 0
		meta.Episode = 0
		meta.Type = media.TypeMovie
	}
	return meta
}

func stripKnownExtension(name string) string {
	ext := filepath.Ext(name)
	if media.IsKnownExtension(ext) {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
