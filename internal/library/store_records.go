package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func stringOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// GetMovie returns the cached movie with the given provider id, or nil when
// the cache has no entry.
func (s *Store) GetMovie(ctx context.Context, id string) (*MovieRecord, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, year, plot, genre, director, actors, rating, updated_at
		 FROM movies WHERE id = ?`, id)

	var (
		rec                          MovieRecord
		plot, genre, director, actor sql.NullString
		updated                      string
	)
	err := row.Scan(&rec.ID, &rec.Title, &rec.Year, &plot, &genre, &director, &actor, &rec.Rating, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", id, err)
	}
	rec.Plot = stringOrEmpty(plot)
	rec.Genre = stringOrEmpty(genre)
	rec.Director = stringOrEmpty(director)
	rec.Actors = stringOrEmpty(actor)
	rec.UpdatedAt = parseTime(updated)
	return &rec, nil
}

// PutMovie inserts or replaces a cached movie record and its title/year
// lookup key.
func (s *Store) PutMovie(ctx context.Context, rec MovieRecord) error {
	if rec.ID == "" {
		return errors.New("movie record requires an id")
	}
	stamp := now()
	if err := s.execWithRetry(ctx,
		`INSERT OR REPLACE INTO movies (id, title, year, plot, genre, director, actors, rating, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.Year,
		nullableString(rec.Plot), nullableString(rec.Genre),
		nullableString(rec.Director), nullableString(rec.Actors),
		rec.Rating, stamp); err != nil {
		return fmt.Errorf("put movie %s: %w", rec.ID, err)
	}
	return s.putLookup(ctx, LookupKey("movie", rec.Title, rec.Year), rec.ID, stamp)
}

// GetSeries returns the cached series with the given provider id, or nil
// when the cache has no entry.
func (s *Store) GetSeries(ctx context.Context, id string) (*SeriesRecord, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, year, plot, genre, actors, rating, updated_at
		 FROM series WHERE id = ?`, id)

	var (
		rec                SeriesRecord
		plot, genre, actor sql.NullString
		updated            string
	)
	err := row.Scan(&rec.ID, &rec.Title, &rec.Year, &plot, &genre, &actor, &rec.Rating, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get series %s: %w", id, err)
	}
	rec.Plot = stringOrEmpty(plot)
	rec.Genre = stringOrEmpty(genre)
	rec.Actors = stringOrEmpty(actor)
	rec.UpdatedAt = parseTime(updated)
	return &rec, nil
}

// PutSeries inserts or replaces a cached series record and its title/year
// lookup key.
func (s *Store) PutSeries(ctx context.Context, rec SeriesRecord) error {
	if rec.ID == "" {
		return errors.New("series record requires an id")
	}
	stamp := now()
	if err := s.execWithRetry(ctx,
		`INSERT OR REPLACE INTO series (id, title, year, plot, genre, actors, rating, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.Year,
		nullableString(rec.Plot), nullableString(rec.Genre), nullableString(rec.Actors),
		rec.Rating, stamp); err != nil {
		return fmt.Errorf("put series %s: %w", rec.ID, err)
	}
	return s.putLookup(ctx, LookupKey("series", rec.Title, rec.Year), rec.ID, stamp)
}

// GetEpisode returns the cached episode, or nil when the cache has no entry.
func (s *Store) GetEpisode(ctx context.Context, seriesID string, season, episode int) (*EpisodeRecord, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT series_id, season, episode, title, plot, rating, updated_at
		 FROM episodes WHERE series_id = ? AND season = ? AND episode = ?`,
		seriesID, season, episode)

	var (
		rec     EpisodeRecord
		plot    sql.NullString
		updated string
	)
	err := row.Scan(&rec.SeriesID, &rec.Season, &rec.Episode, &rec.Title, &plot, &rec.Rating, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get episode %s s%02de%02d: %w", seriesID, season, episode, err)
	}
	rec.Plot = stringOrEmpty(plot)
	rec.UpdatedAt = parseTime(updated)
	return &rec, nil
}

// PutEpisodeBatch stores a season's worth of episodes in one transaction,
// so a batch season fetch lands atomically.
func (s *Store) PutEpisodeBatch(ctx context.Context, records []EpisodeRecord) error {
	if len(records) == 0 {
		return nil
	}
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin episode tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		stamp := now()
		for _, rec := range records {
			if rec.SeriesID == "" {
				return errors.New("episode record requires a series id")
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO episodes (series_id, season, episode, title, plot, rating, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				rec.SeriesID, rec.Season, rec.Episode, rec.Title,
				nullableString(rec.Plot), rec.Rating, stamp); err != nil {
				return fmt.Errorf("put episode s%02de%02d: %w", rec.Season, rec.Episode, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit episode batch: %w", err)
		}
		return nil
	})
}

// GetLookup resolves a normalized title/year key to a cached record id; the
// empty string means no mapping is stored.
func (s *Store) GetLookup(ctx context.Context, key string) (string, error) {
	ctx = ensureContext(ctx)
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT media_id FROM lookups WHERE key = ?`, key).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get lookup %q: %w", key, err)
	}
	return id, nil
}

func (s *Store) putLookup(ctx context.Context, key, mediaID, stamp string) error {
	if err := s.execWithRetry(ctx,
		`INSERT OR REPLACE INTO lookups (key, media_id, updated_at) VALUES (?, ?, ?)`,
		key, mediaID, stamp); err != nil {
		return fmt.Errorf("put lookup %q: %w", key, err)
	}
	return nil
}
