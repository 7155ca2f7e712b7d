package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// Health captures diagnostic information about the library database.
type Health struct {
	DBPath        string   `json:"db_path"`
	Exists        bool     `json:"exists"`
	Readable      bool     `json:"readable"`
	SchemaVersion int      `json:"schema_version"`
	MissingTables []string `json:"missing_tables,omitempty"`
	Movies        int      `json:"movies"`
	Series        int      `json:"series"`
	Episodes      int      `json:"episodes"`
	Error         string   `json:"error,omitempty"`
}

var requiredTables = []string{"movies", "series", "episodes", "lookups"}

// CheckHealth verifies that the database file exists, responds to queries,
// and carries the expected schema, and reports record counts.
func (s *Store) CheckHealth(ctx context.Context) (Health, error) {
	health := Health{DBPath: s.path}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat library database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("library database path %q is a directory", s.path)
	}
	health.Exists = true

	connCtx, cancel := context.WithTimeout(ensureContext(ctx), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping library database: %w", err)
	}
	health.Readable = true

	for _, table := range requiredTables {
		var name string
		row := s.db.QueryRowContext(connCtx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			health.MissingTables = append(health.MissingTables, table)
		}
	}
	if len(health.MissingTables) > 0 {
		return health, nil
	}

	if err := s.db.QueryRowContext(connCtx,
		`SELECT version FROM schema_version LIMIT 1`).Scan(&health.SchemaVersion); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("read schema version: %w", err)
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(1) FROM movies`, &health.Movies},
		{`SELECT COUNT(1) FROM series`, &health.Series},
		{`SELECT COUNT(1) FROM episodes`, &health.Episodes},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(connCtx, c.query).Scan(c.dest); err != nil {
			health.Error = err.Error()
			return health, fmt.Errorf("count records: %w", err)
		}
	}

	return health, nil
}
