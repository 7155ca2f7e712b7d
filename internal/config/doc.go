// Package config loads, normalizes, and validates the TOML configuration
// for reelsort: library roots, metadata provider credentials, and logging.
package config
