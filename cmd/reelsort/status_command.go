package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelsort/internal/library"
	"reelsort/internal/metadata/tmdb"
	"reelsort/internal/metadata/tvmaze"
)

type statusReport struct {
	Library library.Health `json:"library"`
	TMDB    string         `json:"tmdb"`
	TVmaze  string         `json:"tvmaze"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check library database and provider health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := library.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			report := statusReport{
				TMDB:   "not configured",
				TVmaze: "disabled",
			}
			report.Library, err = store.CheckHealth(cmd.Context())
			if err != nil && report.Library.Error == "" {
				report.Library.Error = err.Error()
			}

			if strings.TrimSpace(cfg.TMDB.APIKey) != "" {
				report.TMDB = "reachable"
				client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
				if err != nil {
					report.TMDB = err.Error()
				} else if err := client.Ping(cmd.Context()); err != nil {
					report.TMDB = err.Error()
				}
			}
			if cfg.TVmaze.Enabled {
				report.TVmaze = "reachable"
				client, err := tvmaze.New(cfg.TVmaze.BaseURL)
				if err != nil {
					report.TVmaze = err.Error()
				} else if err := client.Ping(cmd.Context()); err != nil {
					report.TVmaze = err.Error()
				}
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database path: %s\n", report.Library.DBPath)
			fmt.Fprintf(out, "Database exists: %s\n", yesNo(report.Library.Exists))
			fmt.Fprintf(out, "Readable: %s\n", yesNo(report.Library.Readable))
			fmt.Fprintf(out, "Schema version: %d\n", report.Library.SchemaVersion)
			if len(report.Library.MissingTables) > 0 {
				fmt.Fprintf(out, "Missing tables: %s\n", strings.Join(report.Library.MissingTables, ", "))
			}
			fmt.Fprintf(out, "Movies: %d\n", report.Library.Movies)
			fmt.Fprintf(out, "Series: %d\n", report.Library.Series)
			fmt.Fprintf(out, "Episodes: %d\n", report.Library.Episodes)
			if report.Library.Error != "" {
				fmt.Fprintf(out, "Error: %s\n", report.Library.Error)
			}
			fmt.Fprintf(out, "TMDB: %s\n", report.TMDB)
			fmt.Fprintf(out, "TVmaze: %s\n", report.TVmaze)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text output")
	return cmd
}
