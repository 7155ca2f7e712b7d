// Package tvmaze implements a client for the TVmaze API, used as the
// fallback provider when TMDB has no record of a series or episode. TVmaze
// requires no API key, so it also serves keyless installs.
package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Show is the TVmaze series payload.
type Show struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Premiered string   `json:"premiered"`
	Genres    []string `json:"genres"`
	Summary   string   `json:"summary"`
	Rating    struct {
		Average float64 `json:"average"`
	} `json:"rating"`
}

// Episode is the TVmaze episode payload.
type Episode struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Season  int    `json:"season"`
	Number  int    `json:"number"`
	Summary string `json:"summary"`
	Rating  struct {
		Average float64 `json:"average"`
	} `json:"rating"`
}

// Client provides access to the TVmaze API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TVmaze client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tvmaze base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ErrNotFound indicates TVmaze has no record for the query.
var ErrNotFound = errors.New("tvmaze: not found")

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tvmaze url: %w", err)
	}
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tvmaze %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tvmaze response: %w", err)
	}
	return nil
}

// Ping verifies API reachability with a cheap request.
func (c *Client) Ping(ctx context.Context) error {
	var show Show
	err := c.getJSON(ctx, "/shows/1", url.Values{}, &show)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// SearchShow resolves a series title to its best single match.
func (c *Client) SearchShow(ctx context.Context, query string) (*Show, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("q", query)
	var show Show
	if err := c.getJSON(ctx, "/singlesearch/shows", params, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

// GetEpisode fetches one episode of a show by season and episode number.
func (c *Client) GetEpisode(ctx context.Context, showID int64, season, episode int) (*Episode, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	params.Set("number", strconv.Itoa(episode))
	var ep Episode
	if err := c.getJSON(ctx, fmt.Sprintf("/shows/%d/episodebynumber", showID), params, &ep); err != nil {
		return nil, err
	}
	return &ep, nil
}

// GetSeasonEpisodes fetches every episode of a show and filters to the
// requested season. TVmaze has no per-season endpoint keyed by number, so
// the full episode list is the batch unit.
func (c *Client) GetSeasonEpisodes(ctx context.Context, showID int64, season int) ([]Episode, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	var all []Episode
	if err := c.getJSON(ctx, fmt.Sprintf("/shows/%d/episodes", showID), url.Values{}, &all); err != nil {
		return nil, err
	}
	var out []Episode
	for _, ep := range all {
		if ep.Season == season {
			out = append(out, ep)
		}
	}
	return out, nil
}

var reHTMLTag = regexp.MustCompile(`<[^>]+>`)

// StripSummary removes the HTML markup TVmaze embeds in summary fields.
func StripSummary(summary string) string {
	return strings.TrimSpace(reHTMLTag.ReplaceAllString(summary, ""))
}

// PremiereYear extracts the year from a premiere date (YYYY-MM-DD).
func (s *Show) PremiereYear() int {
	if len(s.Premiered) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s.Premiered[:4])
	if err != nil {
		return 0
	}
	return year
}

// GenreList joins genres into a comma-separated list.
func (s *Show) GenreList() string {
	return strings.Join(s.Genres, ", ")
}
