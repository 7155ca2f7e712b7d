// Package tmdb implements a minimal client for The Movie Database API,
// the primary metadata provider.
package tmdb
