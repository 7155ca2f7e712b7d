// Package logging wraps log/slog with attribute helpers, standardized field
// names, and context-derived fields shared by every pipeline stage.
package logging
