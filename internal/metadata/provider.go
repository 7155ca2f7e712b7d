package metadata

import (
	"context"
	"errors"

	"reelsort/internal/library"
)

// ErrNoRecord indicates a provider has no match for the query. The resolver
// treats it as a signal to try the next provider in the chain; any other
// error is logged and likewise skipped, but marks the run as degraded.
var ErrNoRecord = errors.New("no provider record")

// MovieProvider resolves movie titles to cached records. Implementations
// own the record id namespace they emit (tmdb-..., tvmaze-...).
type MovieProvider interface {
	Name() string
	ResolveMovie(ctx context.Context, title string, year int) (*library.MovieRecord, error)
}

// SeriesProvider resolves series titles and fetches whole seasons.
// FetchSeason must return ErrNoRecord for series ids outside the provider's
// namespace so the chain can route the call to the id's owner.
type SeriesProvider interface {
	Name() string
	ResolveSeries(ctx context.Context, title string, year int) (*library.SeriesRecord, error)
	FetchSeason(ctx context.Context, seriesID string, season int) ([]library.EpisodeRecord, error)
}

// EpisodeFetcher is implemented by providers that can fetch one episode
// without pulling the whole season. The resolver uses it as a last resort
// when a season batch did not contain the requested episode.
type EpisodeFetcher interface {
	FetchEpisode(ctx context.Context, seriesID string, season, episode int) (*library.EpisodeRecord, error)
}
