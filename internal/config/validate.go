package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateTVmaze(); err != nil {
		return err
	}
	return nil
}

// RequireTMDB verifies that the primary provider is configured. Parsing and
// preview-only organization work without a key, so this is checked by the
// commands that actually enrich rather than at load time.
func (c *Config) RequireTMDB() error {
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reelsort/config.toml"
		}
		return errors.New("tmdb.api_key is required for enrichment. Set TMDB_API_KEY or edit " + defaultPath + " (create with 'reelsort config init')")
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return errors.New("paths.library_dir must be set")
	}
	if strings.TrimSpace(c.Library.MoviesDir) == "" {
		return errors.New("library.movies_dir must be set")
	}
	if strings.TrimSpace(c.Library.TVDir) == "" {
		return errors.New("library.tv_dir must be set")
	}
	return nil
}

func (c *Config) validateTVmaze() error {
	if c.TVmaze.Enabled && strings.TrimSpace(c.TVmaze.BaseURL) == "" {
		return errors.New("tvmaze.base_url must be set when tvmaze.enabled is true")
	}
	return nil
}
