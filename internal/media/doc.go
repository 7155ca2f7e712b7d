// Package media defines the shared data model for the identification and
// organization pipeline: parsed metadata, enriched metadata, scanned files,
// and per-file processing results.
package media
