package library

import (
	"fmt"
	"strings"
	"time"
)

// MovieRecord is a cached provider result for a movie.
type MovieRecord struct {
	ID        string
	Title     string
	Year      int
	Plot      string
	Genre     string
	Director  string
	Actors    string
	Rating    float64
	UpdatedAt time.Time
}

// SeriesRecord is a cached provider result for a TV series.
type SeriesRecord struct {
	ID        string
	Title     string
	Year      int
	Plot      string
	Genre     string
	Actors    string
	Rating    float64
	UpdatedAt time.Time
}

// EpisodeRecord is a cached provider result for a single episode.
type EpisodeRecord struct {
	SeriesID  string
	Season    int
	Episode   int
	Title     string
	Plot      string
	Rating    float64
	UpdatedAt time.Time
}

// LookupKey builds the normalized title/year index key used to find a
// cached record without knowing its provider id. Year 0 still produces a
// stable key so year-less parses can hit the cache.
func LookupKey(kind, title string, year int) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(title)), " ")
	return fmt.Sprintf("%s|%s|%d", kind, normalized, year)
}
