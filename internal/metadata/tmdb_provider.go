package metadata

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"reelsort/internal/library"
	"reelsort/internal/metadata/tmdb"
)

const tmdbIDPrefix = "tmdb-"

// TMDBProvider adapts the TMDB client to the provider interfaces.
type TMDBProvider struct {
	client *tmdb.Client
}

// NewTMDBProvider wraps a TMDB client.
func NewTMDBProvider(client *tmdb.Client) *TMDBProvider {
	return &TMDBProvider{client: client}
}

func (p *TMDBProvider) Name() string { return "tmdb" }

// ResolveMovie searches TMDB and fetches full details for the best match.
func (p *TMDBProvider) ResolveMovie(ctx context.Context, title string, year int) (*library.MovieRecord, error) {
	resp, err := p.client.SearchMovie(ctx, title, year)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoRecord
	}

	details, err := p.client.GetMovieDetails(ctx, resp.Results[0].ID)
	if err != nil {
		return nil, err
	}
	return &library.MovieRecord{
		ID:       tmdbIDPrefix + strconv.FormatInt(details.ID, 10),
		Title:    details.Title,
		Year:     tmdb.YearFromDate(details.ReleaseDate),
		Plot:     details.Overview,
		Genre:    details.Genre(),
		Director: details.Director(),
		Actors:   details.Actors(),
		Rating:   details.VoteAverage,
	}, nil
}

// ResolveSeries searches TMDB and fetches full details for the best match.
func (p *TMDBProvider) ResolveSeries(ctx context.Context, title string, year int) (*library.SeriesRecord, error) {
	resp, err := p.client.SearchTV(ctx, title, year)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoRecord
	}

	details, err := p.client.GetTVDetails(ctx, resp.Results[0].ID)
	if err != nil {
		return nil, err
	}
	return &library.SeriesRecord{
		ID:     tmdbIDPrefix + strconv.FormatInt(details.ID, 10),
		Title:  details.Name,
		Year:   tmdb.YearFromDate(details.FirstAirDate),
		Plot:   details.Overview,
		Genre:  details.Genre(),
		Actors: details.Actors(),
		Rating: details.VoteAverage,
	}, nil
}

// FetchSeason pulls a whole season in one request.
func (p *TMDBProvider) FetchSeason(ctx context.Context, seriesID string, season int) ([]library.EpisodeRecord, error) {
	raw, ok := strings.CutPrefix(seriesID, tmdbIDPrefix)
	if !ok {
		return nil, ErrNoRecord
	}
	showID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed tmdb series id %q: %w", seriesID, err)
	}

	details, err := p.client.GetSeasonDetails(ctx, showID, season)
	if err != nil {
		return nil, err
	}
	records := make([]library.EpisodeRecord, 0, len(details.Episodes))
	for _, ep := range details.Episodes {
		records = append(records, library.EpisodeRecord{
			SeriesID: seriesID,
			Season:   ep.SeasonNumber,
			Episode:  ep.EpisodeNumber,
			Title:    ep.Name,
			Plot:     ep.Overview,
			Rating:   ep.VoteAverage,
		})
	}
	return records, nil
}
