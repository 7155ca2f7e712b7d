package media

import (
	"path/filepath"
	"strings"
)

// Type distinguishes movies from TV episodes.
type Type string

const (
	TypeMovie Type = "movie"
	TypeTV    Type = "tv"
)

// Metadata is the best-guess result of filename parsing. Zero values mean
// the field was not extracted: Year, Season, and Episode are absent when 0,
// Title is absent when empty. Season and Episode are either both set or
// both zero.
type Metadata struct {
	Title   string `json:"title,omitempty"`
	Year    int    `json:"year,omitempty"`
	Season  int    `json:"season,omitempty"`
	Episode int    `json:"episode,omitempty"`
	Type    Type   `json:"type"`
}

// HasEpisode reports whether both season and episode were extracted.
func (m Metadata) HasEpisode() bool {
	return m.Season > 0 && m.Episode > 0
}

// Enriched extends Metadata with provider-sourced fields. All enrichment
// fields are optional; their absence is a valid outcome, not an error.
type Enriched struct {
	Metadata
	Plot         string  `json:"plot,omitempty"`
	Genre        string  `json:"genre,omitempty"`
	Director     string  `json:"director,omitempty"`
	Actors       string  `json:"actors,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	EpisodeTitle string  `json:"episode_title,omitempty"`
}

// Role classifies a scanned file as a video or an associated sidecar.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleCompanion Role = "companion"
)

// File is a scanned media file. Its identity is the filesystem path; the
// struct is immutable once built.
type File struct {
	Path      string `json:"path"`
	Stem      string `json:"stem"`
	Extension string `json:"extension"`
	Role      Role   `json:"role"`
}

// NewFile builds a File from a path and role, deriving stem and extension.
func NewFile(path string, role Role) File {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return File{
		Path:      path,
		Stem:      strings.TrimSuffix(base, ext),
		Extension: ext,
		Role:      role,
	}
}

// Action is the planned or final disposition of a file.
type Action string

const (
	ActionMove      Action = "move"
	ActionSkip      Action = "skip"
	ActionOverwrite Action = "overwrite"
	ActionPreview   Action = "preview"
)

// ProcessedFile is the terminal per-file result of an organizer run. It is
// created once per input file and never mutated after being returned.
type ProcessedFile struct {
	OriginalPath string   `json:"original_path"`
	PlannedPath  string   `json:"planned_path"`
	Metadata     Enriched `json:"metadata"`
	Action       Action   `json:"action"`
	Errors       []string `json:"errors,omitempty"`
}
