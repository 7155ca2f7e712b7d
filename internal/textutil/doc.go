// Package textutil provides stem normalization helpers used to pair
// companion files (subtitles) with their primary video files.
package textutil
