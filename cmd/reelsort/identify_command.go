package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"reelsort/internal/library"
	"reelsort/internal/media"
	"reelsort/internal/parse"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "identify <file>...",
		Short: "Show what reelsort extracts and resolves for the given files",
		Long: `Parse each filename and resolve it against the metadata providers,
printing the result without moving anything. Useful for checking how a
release name will be interpreted before organizing.

Examples:
  reelsort identify Movie.Name.2022.1080p.BluRay.x264.mp4
  reelsort identify --offline "Breaking Bad S05E10.mkv"
  reelsort identify --json *.mkv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.newLogger(cfg)

			var enrich func(media.Metadata) media.Enriched
			if offline {
				enrich = func(meta media.Metadata) media.Enriched {
					return media.Enriched{Metadata: meta}
				}
			} else {
				store, err := library.Open(cfg)
				if err != nil {
					return fmt.Errorf("open library store: %w", err)
				}
				defer store.Close()

				resolver, err := ctx.buildResolver(cfg, store, logger)
				if err != nil {
					return err
				}
				enrich = func(meta media.Metadata) media.Enriched {
					return resolver.Enrich(cmd.Context(), meta)
				}
			}

			type identification struct {
				Input    string         `json:"input"`
				Parsed   media.Metadata `json:"parsed"`
				Resolved media.Enriched `json:"resolved"`
				NewName  string         `json:"new_name"`
			}

			results := make([]identification, 0, len(args))
			for _, arg := range args {
				parsed := parse.Parse(filepath.Base(arg))
				resolved := enrich(parsed)
				results = append(results, identification{
					Input:    arg,
					Parsed:   parsed,
					Resolved: resolved,
					NewName:  parse.GenerateNewName(resolved),
				})
			}

			if jsonOut {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				episode := ""
				if r.Resolved.HasEpisode() {
					episode = fmt.Sprintf("S%02dE%02d", r.Resolved.Season, r.Resolved.Episode)
				}
				rows = append(rows, []string{
					filepath.Base(r.Input),
					string(r.Resolved.Type),
					r.Resolved.Title,
					zeroAsDash(r.Resolved.Year),
					episode,
					r.NewName,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"File", "Type", "Title", "Year", "Episode", "New Name"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&offline, "offline", false, "Parse only; skip provider resolution")
	return cmd
}

func zeroAsDash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
