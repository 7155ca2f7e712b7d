package metadata

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"reelsort/internal/library"
	"reelsort/internal/metadata/tvmaze"
)

const tvmazeIDPrefix = "tvmaze-"

// TVmazeProvider adapts the TVmaze client to the series provider interface.
// TVmaze carries no movie catalog, so it participates in series resolution
// only.
type TVmazeProvider struct {
	client *tvmaze.Client
}

// NewTVmazeProvider wraps a TVmaze client.
func NewTVmazeProvider(client *tvmaze.Client) *TVmazeProvider {
	return &TVmazeProvider{client: client}
}

func (p *TVmazeProvider) Name() string { return "tvmaze" }

// ResolveSeries looks the title up via single-show search. The year is
// advisory only; TVmaze search does not filter by premiere year.
func (p *TVmazeProvider) ResolveSeries(ctx context.Context, title string, year int) (*library.SeriesRecord, error) {
	show, err := p.client.SearchShow(ctx, title)
	if err != nil {
		if errors.Is(err, tvmaze.ErrNotFound) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	if year > 0 && show.PremiereYear() > 0 && show.PremiereYear() != year {
		return nil, ErrNoRecord
	}
	return &library.SeriesRecord{
		ID:     tvmazeIDPrefix + strconv.FormatInt(show.ID, 10),
		Title:  show.Name,
		Year:   show.PremiereYear(),
		Plot:   tvmaze.StripSummary(show.Summary),
		Genre:  show.GenreList(),
		Rating: show.Rating.Average,
	}, nil
}

// FetchSeason pulls the show's episode list and returns the requested
// season.
func (p *TVmazeProvider) FetchSeason(ctx context.Context, seriesID string, season int) ([]library.EpisodeRecord, error) {
	raw, ok := strings.CutPrefix(seriesID, tvmazeIDPrefix)
	if !ok {
		return nil, ErrNoRecord
	}
	showID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed tvmaze series id %q: %w", seriesID, err)
	}

	episodes, err := p.client.GetSeasonEpisodes(ctx, showID, season)
	if err != nil {
		if errors.Is(err, tvmaze.ErrNotFound) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	records := make([]library.EpisodeRecord, 0, len(episodes))
	for _, ep := range episodes {
		records = append(records, episodeRecord(seriesID, ep))
	}
	return records, nil
}

// FetchEpisode fetches a single episode by number, for episodes the season
// list does not carry (specials, renumbered seasons).
func (p *TVmazeProvider) FetchEpisode(ctx context.Context, seriesID string, season, episode int) (*library.EpisodeRecord, error) {
	raw, ok := strings.CutPrefix(seriesID, tvmazeIDPrefix)
	if !ok {
		return nil, ErrNoRecord
	}
	showID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed tvmaze series id %q: %w", seriesID, err)
	}

	ep, err := p.client.GetEpisode(ctx, showID, season, episode)
	if err != nil {
		if errors.Is(err, tvmaze.ErrNotFound) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	rec := episodeRecord(seriesID, *ep)
	return &rec, nil
}

func episodeRecord(seriesID string, ep tvmaze.Episode) library.EpisodeRecord {
	return library.EpisodeRecord{
		SeriesID: seriesID,
		Season:   ep.Season,
		Episode:  ep.Number,
		Title:    ep.Name,
		Plot:     tvmaze.StripSummary(ep.Summary),
		Rating:   ep.Rating.Average,
	}
}
