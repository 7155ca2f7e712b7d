// Package scan discovers media files under a source root and classifies
// them by role. Hidden entries and release "sample" clips are skipped;
// unknown extensions are ignored rather than reported as errors.
package scan

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"reelsort/internal/logging"
	"reelsort/internal/media"
	"reelsort/internal/services"
)

// Result is the outcome of scanning one root.
type Result struct {
	Root  string
	Files []media.File
}

// Walk traverses root and returns every recognized media file in lexical
// order. Directory read errors under the root are logged and skipped so one
// unreadable folder does not abort the scan; a missing or unreadable root
// itself is an error.
func Walk(root string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	cleaned := filepath.Clean(root)

	result := &Result{Root: cleaned}
	err := filepath.WalkDir(cleaned, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == cleaned {
				return services.Wrap(services.ErrValidation, "scan", "walk",
					"source root is not readable", walkErr)
			}
			logger.Warn("skipping unreadable entry",
				logging.String(logging.FieldFile, path),
				logging.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path != cleaned && isHidden(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(name) || isSample(name) {
			return nil
		}

		role, ok := media.RoleForExtension(filepath.Ext(name))
		if !ok {
			return nil
		}
		result.Files = append(result.Files, media.NewFile(path, role))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("scan complete",
		logging.String("root", cleaned),
		logging.Int("files", len(result.Files)))
	return result, nil
}

// Primaries returns only the video files from a scan.
func (r *Result) Primaries() []media.File {
	return r.byRole(media.RolePrimary)
}

// Companions returns only the sidecar files from a scan.
func (r *Result) Companions() []media.File {
	return r.byRole(media.RoleCompanion)
}

func (r *Result) byRole(role media.Role) []media.File {
	var out []media.File
	for _, f := range r.Files {
		if f.Role == role {
			out = append(out, f)
		}
	}
	return out
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// isSample reports whether a filename looks like a release sample clip
// ("sample.mkv", "movie-sample.mkv"). Titles merely containing the word
// ("Sample Movie.mkv") are kept.
func isSample(name string) bool {
	stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	if stem == "sample" {
		return true
	}
	for _, sep := range []string{"-", ".", "_", " "} {
		if strings.HasSuffix(stem, sep+"sample") {
			return true
		}
	}
	return false
}
