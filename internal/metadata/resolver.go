package metadata

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"reelsort/internal/library"
	"reelsort/internal/logging"
	"reelsort/internal/media"
)

// Store is the persistence surface the resolver needs. library.Store
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	GetMovie(ctx context.Context, id string) (*library.MovieRecord, error)
	PutMovie(ctx context.Context, rec library.MovieRecord) error
	GetSeries(ctx context.Context, id string) (*library.SeriesRecord, error)
	PutSeries(ctx context.Context, rec library.SeriesRecord) error
	GetEpisode(ctx context.Context, seriesID string, season, episode int) (*library.EpisodeRecord, error)
	PutEpisodeBatch(ctx context.Context, records []library.EpisodeRecord) error
	GetLookup(ctx context.Context, key string) (string, error)
}

var _ Store = (*library.Store)(nil)

// Resolver enriches parsed metadata from the persistent cache and the
// provider chain. Enrichment never fails: every provider and store problem
// degrades to returning the parse-level fields.
//
// The resolver is not safe for concurrent use; the pipeline resolves files
// sequentially within a run.
type Resolver struct {
	store  Store
	movies []MovieProvider
	series []SeriesProvider
	logger *slog.Logger
	caser  cases.Caser

	// Session caches. Negative entries (nil values) stop a run from
	// re-querying providers for a title that already failed; the
	// fetchedSeasons set caps season batch fetches at one attempt per
	// (provider, series, season) per run.
	movieCache     map[string]*library.MovieRecord
	seriesCache    map[string]*library.SeriesRecord
	fetchedSeasons map[string]struct{}
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMovieProviders sets the movie provider chain, tried in order.
func WithMovieProviders(providers ...MovieProvider) ResolverOption {
	return func(r *Resolver) {
		r.movies = append(r.movies, providers...)
	}
}

// WithSeriesProviders sets the series provider chain, tried in order.
func WithSeriesProviders(providers ...SeriesProvider) ResolverOption {
	return func(r *Resolver) {
		r.series = append(r.series, providers...)
	}
}

// NewResolver builds a resolver over the given store.
func NewResolver(store Store, logger *slog.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Resolver{
		store:          store,
		logger:         logger,
		caser:          cases.Title(language.English, cases.NoLower),
		movieCache:     make(map[string]*library.MovieRecord),
		seriesCache:    make(map[string]*library.SeriesRecord),
		fetchedSeasons: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enrich resolves provider metadata for one parsed result. On any failure
// the parse-level fields come back unchanged apart from title casing, so
// the pipeline can always continue to organizing.
func (r *Resolver) Enrich(ctx context.Context, meta media.Metadata) media.Enriched {
	if meta.Type == media.TypeTV && meta.HasEpisode() {
		return r.enrichEpisode(ctx, meta)
	}
	return r.enrichMovie(ctx, meta)
}

func (r *Resolver) enrichMovie(ctx context.Context, meta media.Metadata) media.Enriched {
	if meta.Title == "" {
		return r.degraded(meta)
	}

	key := library.LookupKey("movie", meta.Title, meta.Year)
	if rec, seen := r.movieCache[key]; seen {
		return r.movieResult(meta, rec)
	}

	if rec := r.movieFromStore(ctx, key); rec != nil {
		r.movieCache[key] = rec
		return r.movieResult(meta, rec)
	}

	for _, provider := range r.movies {
		rec, err := provider.ResolveMovie(ctx, meta.Title, meta.Year)
		if err != nil {
			if !errors.Is(err, ErrNoRecord) {
				r.logger.Warn("movie provider failed",
					logging.String(logging.FieldProvider, provider.Name()),
					logging.String("title", meta.Title),
					logging.Error(err))
			}
			continue
		}
		if storeErr := r.store.PutMovie(ctx, *rec); storeErr != nil {
			r.logger.Warn("persist movie record failed",
				logging.String("id", rec.ID), logging.Error(storeErr))
		}
		r.movieCache[key] = rec
		return r.movieResult(meta, rec)
	}

	r.movieCache[key] = nil
	return r.degraded(meta)
}

func (r *Resolver) movieFromStore(ctx context.Context, key string) *library.MovieRecord {
	id, err := r.store.GetLookup(ctx, key)
	if err != nil {
		r.logger.Warn("lookup read failed", logging.String("key", key), logging.Error(err))
		return nil
	}
	if id == "" {
		return nil
	}
	rec, err := r.store.GetMovie(ctx, id)
	if err != nil {
		r.logger.Warn("cached movie read failed", logging.String("id", id), logging.Error(err))
		return nil
	}
	return rec
}

func (r *Resolver) movieResult(meta media.Metadata, rec *library.MovieRecord) media.Enriched {
	if rec == nil {
		return r.degraded(meta)
	}
	meta.Title = rec.Title
	if rec.Year > 0 {
		meta.Year = rec.Year
	}
	return media.Enriched{
		Metadata: meta,
		Plot:     rec.Plot,
		Genre:    rec.Genre,
		Director: rec.Director,
		Actors:   rec.Actors,
		Rating:   rec.Rating,
	}
}

func (r *Resolver) enrichEpisode(ctx context.Context, meta media.Metadata) media.Enriched {
	if meta.Title == "" {
		return r.degraded(meta)
	}

	series := r.resolveSeries(ctx, meta)
	if series == nil {
		return r.degraded(meta)
	}

	episode := r.resolveEpisode(ctx, series.ID, meta)

	meta.Title = series.Title
	if series.Year > 0 {
		meta.Year = series.Year
	}
	result := media.Enriched{
		Metadata: meta,
		Plot:     series.Plot,
		Genre:    series.Genre,
		Actors:   series.Actors,
		Rating:   series.Rating,
	}
	if episode != nil {
		result.EpisodeTitle = episode.Title
		if episode.Plot != "" {
			result.Plot = episode.Plot
		}
		if episode.Rating > 0 {
			result.Rating = episode.Rating
		}
	}
	return result
}

func (r *Resolver) resolveSeries(ctx context.Context, meta media.Metadata) *library.SeriesRecord {
	key := library.LookupKey("series", meta.Title, meta.Year)
	if rec, seen := r.seriesCache[key]; seen {
		return rec
	}

	if id, err := r.store.GetLookup(ctx, key); err == nil && id != "" {
		rec, err := r.store.GetSeries(ctx, id)
		if err != nil {
			r.logger.Warn("cached series read failed", logging.String("id", id), logging.Error(err))
		} else if rec != nil {
			r.seriesCache[key] = rec
			return rec
		}
	} else if err != nil {
		r.logger.Warn("lookup read failed", logging.String("key", key), logging.Error(err))
	}

	for _, provider := range r.series {
		rec, err := provider.ResolveSeries(ctx, meta.Title, meta.Year)
		if err != nil {
			if !errors.Is(err, ErrNoRecord) {
				r.logger.Warn("series provider failed",
					logging.String(logging.FieldProvider, provider.Name()),
					logging.String("title", meta.Title),
					logging.Error(err))
			}
			continue
		}
		if storeErr := r.store.PutSeries(ctx, *rec); storeErr != nil {
			r.logger.Warn("persist series record failed",
				logging.String("id", rec.ID), logging.Error(storeErr))
		}
		r.seriesCache[key] = rec
		return rec
	}

	r.seriesCache[key] = nil
	return nil
}

// resolveEpisode returns the cached episode, batch-fetching the whole
// season on first miss. When the id's owning provider cannot
// supply the episode, resolution falls back to re-resolving the show by
// title against the remaining providers under their own identifiers.
func (r *Resolver) resolveEpisode(ctx context.Context, seriesID string, meta media.Metadata) *library.EpisodeRecord {
	rec, err := r.store.GetEpisode(ctx, seriesID, meta.Season, meta.Episode)
	if err != nil {
		r.logger.Warn("cached episode read failed",
			logging.String("id", seriesID), logging.Error(err))
		return nil
	}
	if rec != nil {
		return rec
	}

	for _, provider := range r.series {
		if rec := r.seasonFromProvider(ctx, provider, seriesID, meta.Season, meta.Episode); rec != nil {
			return rec
		}
	}
	return r.fallbackEpisode(ctx, seriesID, meta)
}

// seasonFromProvider batch-fetches one season under the given id and
// re-reads the target episode from the store. Each (series, season) pair
// is fetched at most once per run regardless of outcome.
func (r *Resolver) seasonFromProvider(ctx context.Context, provider SeriesProvider, seriesID string, season, episode int) *library.EpisodeRecord {
	seasonKey := provider.Name() + "|" + seriesID + "|" + strconv.Itoa(season)
	if _, done := r.fetchedSeasons[seasonKey]; done {
		return nil
	}
	r.fetchedSeasons[seasonKey] = struct{}{}

	records, err := provider.FetchSeason(ctx, seriesID, season)
	if err != nil {
		if !errors.Is(err, ErrNoRecord) {
			r.logger.Warn("season fetch failed",
				logging.String(logging.FieldProvider, provider.Name()),
				logging.String("id", seriesID),
				logging.Int("season", season),
				logging.Error(err))
		}
		return nil
	}
	if err := r.store.PutEpisodeBatch(ctx, records); err != nil {
		r.logger.Warn("persist season batch failed",
			logging.String("id", seriesID), logging.Error(err))
	}

	rec, err := r.store.GetEpisode(ctx, seriesID, season, episode)
	if err != nil {
		r.logger.Warn("cached episode read failed",
			logging.String("id", seriesID), logging.Error(err))
		return nil
	}
	return rec
}

// fallbackEpisode re-resolves the show by title against every provider
// other than the identifier's owner and serves the episode under the
// alternate provider's own identifier. Fallback records persist under that
// identifier so they never collide with the owner's.
func (r *Resolver) fallbackEpisode(ctx context.Context, ownerID string, meta media.Metadata) *library.EpisodeRecord {
	for _, provider := range r.series {
		if strings.HasPrefix(ownerID, provider.Name()+"-") {
			continue
		}
		alt, err := provider.ResolveSeries(ctx, meta.Title, meta.Year)
		if err != nil {
			if !errors.Is(err, ErrNoRecord) {
				r.logger.Warn("series provider failed",
					logging.String(logging.FieldProvider, provider.Name()),
					logging.String("title", meta.Title),
					logging.Error(err))
			}
			continue
		}
		if alt.ID == ownerID {
			continue
		}

		if rec, err := r.store.GetEpisode(ctx, alt.ID, meta.Season, meta.Episode); err == nil && rec != nil {
			return rec
		}
		// The series row must exist before episodes can reference it.
		if storeErr := r.store.PutSeries(ctx, *alt); storeErr != nil {
			r.logger.Warn("persist series record failed",
				logging.String("id", alt.ID), logging.Error(storeErr))
			continue
		}

		if rec := r.seasonFromProvider(ctx, provider, alt.ID, meta.Season, meta.Episode); rec != nil {
			return rec
		}

		fetcher, ok := provider.(EpisodeFetcher)
		if !ok {
			continue
		}
		ep, err := fetcher.FetchEpisode(ctx, alt.ID, meta.Season, meta.Episode)
		if err != nil {
			if !errors.Is(err, ErrNoRecord) {
				r.logger.Warn("episode fetch failed",
					logging.String(logging.FieldProvider, provider.Name()),
					logging.String("id", alt.ID),
					logging.Error(err))
			}
			continue
		}
		if storeErr := r.store.PutEpisodeBatch(ctx, []library.EpisodeRecord{*ep}); storeErr != nil {
			r.logger.Warn("persist episode failed",
				logging.String("id", alt.ID), logging.Error(storeErr))
		}
		return ep
	}
	return nil
}

// degraded returns the parse-level metadata, title-cased so filenames stay
// presentable when no provider supplied an authoritative title.
func (r *Resolver) degraded(meta media.Metadata) media.Enriched {
	if meta.Title != "" {
		meta.Title = r.caser.String(meta.Title)
	}
	return media.Enriched{Metadata: meta}
}
