// Package metadata resolves parsed filename guesses into full metadata
// records. Resolution consults the persistent store first, then a chain of
// providers (TMDB, then TVmaze), caching every answer per run so a batch of
// episodes from one season costs at most one provider round trip.
package metadata
