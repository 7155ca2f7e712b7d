package config

const (
	defaultLibraryDir   = "~/library"
	defaultDataDir      = "~/.local/share/reelsort"
	defaultLogDir       = "~/.local/share/reelsort/logs"
	defaultMoviesDir    = "movies"
	defaultTVDir        = "tv"
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBLanguage = "en-US"
	defaultTVmazeURL    = "https://api.tvmaze.com"
	defaultLogFormat    = "text"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			DataDir:    defaultDataDir,
			LogDir:     defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		TVmaze: TVmaze{
			Enabled: true,
			BaseURL: defaultTVmazeURL,
		},
		Library: Library{
			MoviesDir: defaultMoviesDir,
			TVDir:     defaultTVDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
