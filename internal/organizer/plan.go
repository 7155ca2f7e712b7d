package organizer

import (
	"fmt"
	"path/filepath"

	"reelsort/internal/media"
	"reelsort/internal/parse"
	"reelsort/internal/textutil"
)

// Item pairs a scanned file with its enriched metadata. Companion files
// carry no metadata of their own; they inherit the plan of the primary they
// match.
type Item struct {
	File media.File
	Meta media.Enriched
}

// Roots are the library destinations plans are built against.
type Roots struct {
	Movies string
	TV     string
}

// Plan computes the destination for every item without touching the
// filesystem. Items that fail validation come back as skips with one error
// per missing field and their planned path equal to their original path.
// Companions are matched to primaries by normalized stem; an unmatched
// companion is a silent skip.
func Plan(items []Item, roots Roots) []media.ProcessedFile {
	var primaries []Item
	var companions []Item
	for _, item := range items {
		if item.File.Role == media.RoleCompanion {
			companions = append(companions, item)
			continue
		}
		primaries = append(primaries, item)
	}

	results := make([]media.ProcessedFile, 0, len(items))
	planned := make(map[string]string, len(primaries))
	for _, item := range primaries {
		result := planPrimary(item, roots)
		if result.Action == media.ActionMove {
			planned[item.File.Path] = result.PlannedPath
		}
		results = append(results, result)
	}

	for _, companion := range companions {
		results = append(results, planCompanion(companion, primaries, planned))
	}
	return results
}

func planPrimary(item Item, roots Roots) media.ProcessedFile {
	result := media.ProcessedFile{
		OriginalPath: item.File.Path,
		PlannedPath:  item.File.Path,
		Metadata:     item.Meta,
	}

	if errs := validate(item.Meta); len(errs) > 0 {
		result.Action = media.ActionSkip
		result.Errors = errs
		return result
	}

	result.PlannedPath = destination(item.Meta, item.File.Extension, roots)
	result.Action = media.ActionMove
	return result
}

// validate reports every missing required field, not just the first, so a
// run summary shows the full reason a file was skipped.
func validate(meta media.Enriched) []string {
	var errs []string
	if meta.Title == "" {
		errs = append(errs, "missing title")
	}
	if meta.Type == media.TypeTV {
		if meta.Season == 0 {
			errs = append(errs, "missing season")
		}
		if meta.Episode == 0 {
			errs = append(errs, "missing episode")
		}
		if meta.EpisodeTitle == "" {
			errs = append(errs, "missing episode title")
		}
	}
	return errs
}

func destination(meta media.Enriched, ext string, roots Roots) string {
	name := parse.GenerateNewName(meta)
	if meta.Type == media.TypeTV {
		seriesDir := parse.SanitizeFilename(meta.Title)
		seasonDir := fmt.Sprintf("Season %d", meta.Season)
		return filepath.Join(roots.TV, seriesDir, seasonDir, name+ext)
	}
	return filepath.Join(roots.Movies, name, name+ext)
}

// planCompanion inherits the destination of the first primary whose
// normalized stem relates to the companion's. Companions keep their own
// extension.
func planCompanion(companion Item, primaries []Item, planned map[string]string) media.ProcessedFile {
	result := media.ProcessedFile{
		OriginalPath: companion.File.Path,
		PlannedPath:  companion.File.Path,
		Action:       media.ActionSkip,
	}

	stem := textutil.NormalizeStem(companion.File.Stem)
	for _, primary := range primaries {
		target, ok := planned[primary.File.Path]
		if !ok {
			continue
		}
		if !textutil.StemsRelated(stem, textutil.NormalizeStem(primary.File.Stem)) {
			continue
		}
		base := target[:len(target)-len(filepath.Ext(target))]
		result.PlannedPath = base + companion.File.Extension
		result.Metadata = primary.Meta
		result.Action = media.ActionMove
		break
	}
	return result
}
