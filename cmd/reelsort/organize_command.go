package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reelsort/internal/config"
	"reelsort/internal/library"
	"reelsort/internal/media"
	"reelsort/internal/movelog"
	"reelsort/internal/organizer"
	"reelsort/internal/parse"
	"reelsort/internal/scan"
	"reelsort/internal/services"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var apply bool
	var overwrite bool
	var skipExisting bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "organize <source-dir>",
		Short: "Identify media files and move them into the library",
		Long: `Scan a directory for media files, identify each one, and plan its place
in the library. The default run is a preview that prints the plan without
touching anything; pass --apply to perform the moves.

Examples:
  reelsort organize ~/Downloads               # preview only
  reelsort organize ~/Downloads --apply       # move files
  reelsort organize ~/Downloads --apply --overwrite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.newLogger(cfg)

			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			scanned, err := scan.Walk(source, logger)
			if err != nil {
				return err
			}
			if len(scanned.Files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No media files found.")
				return nil
			}

			store, err := library.Open(cfg)
			if err != nil {
				return fmt.Errorf("open library store: %w", err)
			}
			defer store.Close()

			resolver, err := ctx.buildResolver(cfg, store, logger)
			if err != nil {
				return err
			}

			var journal *movelog.Journal
			if apply {
				journal, err = movelog.Open(cfg.MoveLogPath())
				if err != nil {
					return fmt.Errorf("open move journal: %w", err)
				}
				runCtx = services.WithRunID(runCtx, journal.RunID())
			}

			items := make([]organizer.Item, 0, len(scanned.Files))
			for _, file := range scanned.Files {
				item := organizer.Item{File: file}
				if file.Role == media.RolePrimary {
					meta := parse.ParseWithContext(filepath.Base(file.Path), file.Path, scanned.Root)
					item.Meta = resolver.Enrich(services.WithFile(runCtx, file.Path), meta)
				}
				items = append(items, item)
			}

			opts := organizer.Options{
				Roots:     organizer.Roots{Movies: cfg.MovieRoot(), TV: cfg.TVRoot()},
				Preview:   !apply,
				Overwrite: overwrite || cfg.Library.OverwriteExisting,
			}
			if apply && !skipExisting && !opts.Overwrite {
				opts.Resolve = conflictPrompt(cmd)
			}

			results, err := organizer.New(logger, journal).Organize(runCtx, items, opts)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, results)
			}
			printResults(cmd, results, !apply)
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Perform the planned moves instead of previewing")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing destination files without asking")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Skip files whose destination already exists without asking")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")
	return cmd
}

// conflictPrompt asks on the terminal whether to overwrite an existing
// destination. Without a TTY there is nobody to ask, so conflicts skip.
func conflictPrompt(cmd *cobra.Command) organizer.ConflictResolver {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	return func(originalPath, plannedPath string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "Destination exists: %s\nOverwrite with %s? [y/N] ", plannedPath, originalPath)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func printResults(cmd *cobra.Command, results []media.ProcessedFile, preview bool) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(results))
	counts := map[media.Action]int{}
	for _, result := range results {
		counts[result.Action]++
		rows = append(rows, []string{
			filepath.Base(result.OriginalPath),
			string(result.Action),
			displayDestination(result),
			strings.Join(result.Errors, "; "),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"File", "Action", "Destination", "Notes"}, rows))

	if preview {
		fmt.Fprintf(out, "\nPreview: %d planned, %d would overwrite, %d skipped. Re-run with --apply to move files.\n",
			counts[media.ActionPreview], counts[media.ActionOverwrite], counts[media.ActionSkip])
		return
	}
	fmt.Fprintf(out, "\nDone: %d moved, %d overwritten, %d skipped.\n",
		counts[media.ActionMove], counts[media.ActionOverwrite], counts[media.ActionSkip])
}

func displayDestination(result media.ProcessedFile) string {
	if result.PlannedPath == result.OriginalPath {
		return "-"
	}
	return result.PlannedPath
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
