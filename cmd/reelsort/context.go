package main

import (
	"log/slog"
	"strings"
	"sync"

	"reelsort/internal/config"
	"reelsort/internal/logging"
	"reelsort/internal/metadata"
	"reelsort/internal/metadata/tmdb"
	"reelsort/internal/metadata/tvmaze"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Logging.Level
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		level = *c.logLevelFlag
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
	})
}

// buildResolver assembles the provider chain from configuration. TMDB is
// optional as long as TVmaze can serve series lookups; with no provider at
// all, enrichment cannot work and the TMDB key requirement is surfaced.
func (c *commandContext) buildResolver(cfg *config.Config, store metadata.Store, logger *slog.Logger) (*metadata.Resolver, error) {
	var movieProviders []metadata.MovieProvider
	var seriesProviders []metadata.SeriesProvider

	if strings.TrimSpace(cfg.TMDB.APIKey) != "" {
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
		if err != nil {
			return nil, err
		}
		provider := metadata.NewTMDBProvider(client)
		movieProviders = append(movieProviders, provider)
		seriesProviders = append(seriesProviders, provider)
	}

	if cfg.TVmaze.Enabled {
		client, err := tvmaze.New(cfg.TVmaze.BaseURL)
		if err != nil {
			return nil, err
		}
		seriesProviders = append(seriesProviders, metadata.NewTVmazeProvider(client))
	}

	if len(movieProviders) == 0 && len(seriesProviders) == 0 {
		if err := cfg.RequireTMDB(); err != nil {
			return nil, err
		}
	}
	if len(movieProviders) == 0 {
		logger.Warn("tmdb api key not set; movie enrichment disabled")
	}

	return metadata.NewResolver(store, logger,
		metadata.WithMovieProviders(movieProviders...),
		metadata.WithSeriesProviders(seriesProviders...)), nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
