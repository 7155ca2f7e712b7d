// Package library persists resolved metadata in a SQLite database so
// repeated runs do not re-query providers for titles they have already
// identified. Lookups are keyed by provider record id plus a normalized
// title/year index; misses return nil rather than an error.
package library
