// Package parse turns release-style media filenames into structured
// metadata. Parsing is an ordered table of token-classification rules
// (season/episode markers first, then year extraction) followed by
// release-tag stripping for title inference; ancestor folder names can
// supply fields the filename lacks, bounded by the scan root.
package parse
