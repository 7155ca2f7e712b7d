package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"reelsort/internal/fileutil"
	"reelsort/internal/logging"
	"reelsort/internal/media"
	"reelsort/internal/movelog"
	"reelsort/internal/services"
)

// ConflictResolver decides what to do when a destination already exists.
// It is invoked exactly once per conflicting file; returning true
// overwrites, false skips.
type ConflictResolver func(originalPath, plannedPath string) bool

// Options controls one organize run.
type Options struct {
	Roots Roots
	// Preview plans and reports without touching the filesystem.
	Preview bool
	// Overwrite resolves every conflict in favor of the incoming file
	// without consulting the resolver.
	Overwrite bool
	// Resolve handles conflicts when Overwrite is off. Nil means skip.
	Resolve ConflictResolver
}

// Organizer executes planned moves into the library.
type Organizer struct {
	logger  *slog.Logger
	journal *movelog.Journal
}

// New constructs an organizer. The journal may be nil for preview-only use.
func New(logger *slog.Logger, journal *movelog.Journal) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{
		logger:  logger.With(logging.String(logging.FieldComponent, "organizer")),
		journal: journal,
	}
}

// Organize plans every item and, unless previewing, moves files into place.
// Per-file failures are isolated into that file's result; the only hard
// error is an unusable library root, which no per-file retry can fix.
func (o *Organizer) Organize(ctx context.Context, items []Item, opts Options) ([]media.ProcessedFile, error) {
	results := Plan(items, opts.Roots)

	if opts.Preview {
		annotatePreview(results)
		return results, nil
	}

	if err := ensureRoots(opts.Roots); err != nil {
		return nil, err
	}

	for i := range results {
		result := &results[i]
		if result.Action != media.ActionMove {
			continue
		}
		if err := ctx.Err(); err != nil {
			result.Action = media.ActionSkip
			result.Errors = append(result.Errors, "run canceled")
			continue
		}
		o.apply(result, opts)
	}
	return results, nil
}

// annotatePreview relabels planned moves, flagging destinations that
// already exist so a preview shows what an apply run would ask about.
func annotatePreview(results []media.ProcessedFile) {
	for i := range results {
		result := &results[i]
		if result.Action != media.ActionMove {
			continue
		}
		if fileutil.Exists(result.PlannedPath) {
			result.Action = media.ActionOverwrite
		} else {
			result.Action = media.ActionPreview
		}
	}
}

func (o *Organizer) apply(result *media.ProcessedFile, opts Options) {
	logger := o.logger.With(logging.String(logging.FieldFile, result.OriginalPath))

	overwrite := false
	if fileutil.Exists(result.PlannedPath) {
		switch {
		case opts.Overwrite:
			overwrite = true
		case opts.Resolve != nil && opts.Resolve(result.OriginalPath, result.PlannedPath):
			overwrite = true
		default:
			logger.Info("destination exists, skipping",
				logging.String("destination", result.PlannedPath))
			result.Action = media.ActionSkip
			return
		}
	}

	if err := fileutil.Move(result.OriginalPath, result.PlannedPath, overwrite); err != nil {
		logger.Error("move failed",
			logging.String("destination", result.PlannedPath),
			logging.Error(err))
		result.Action = media.ActionSkip
		result.Errors = append(result.Errors, err.Error())
		return
	}

	if overwrite {
		result.Action = media.ActionOverwrite
	} else {
		result.Action = media.ActionMove
	}
	if o.journal != nil {
		if err := o.journal.Record(result.OriginalPath, result.PlannedPath, string(result.Action)); err != nil {
			logger.Warn("journal write failed", logging.Error(err))
		}
	}
	logger.Info("organized",
		logging.String("destination", result.PlannedPath),
		logging.String(logging.FieldAction, string(result.Action)))
}

func ensureRoots(roots Roots) error {
	for _, root := range []string{roots.Movies, roots.TV} {
		if root == "" {
			return services.Wrap(services.ErrConfiguration, "organize", "ensure roots",
				"library root is not configured", nil)
		}
		if err := os.MkdirAll(root, 0o755); err != nil {
			return services.Wrap(services.ErrConfiguration, "organize", "ensure roots",
				"library root is not writable", err)
		}
		probe := filepath.Join(root, ".reelsort-write-check")
		if err := os.WriteFile(probe, nil, 0o644); err != nil {
			return services.Wrap(services.ErrConfiguration, "organize", "ensure roots",
				"library root is not writable", err)
		}
		_ = os.Remove(probe)
	}
	return nil
}
