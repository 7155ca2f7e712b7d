package media

import "strings"

var videoExtensions = map[string]struct{}{
	".mkv": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".m4v": {},
	".wmv": {}, ".ts": {}, ".m2ts": {}, ".webm": {}, ".mpg": {}, ".mpeg": {},
}

var subtitleExtensions = map[string]struct{}{
	".srt": {}, ".sub": {}, ".ass": {}, ".ssa": {}, ".vtt": {}, ".idx": {}, ".smi": {},
}

// IsVideoExtension reports whether ext (with leading dot) is a recognized
// video container extension.
func IsVideoExtension(ext string) bool {
	_, ok := videoExtensions[strings.ToLower(ext)]
	return ok
}

// IsSubtitleExtension reports whether ext (with leading dot) is a
// recognized subtitle extension.
func IsSubtitleExtension(ext string) bool {
	_, ok := subtitleExtensions[strings.ToLower(ext)]
	return ok
}

// IsKnownExtension reports whether ext belongs to either recognized set.
func IsKnownExtension(ext string) bool {
	return IsVideoExtension(ext) || IsSubtitleExtension(ext)
}

// RoleForExtension maps an extension to the file role it implies; the
// second return is false for unrecognized extensions.
func RoleForExtension(ext string) (Role, bool) {
	switch {
	case IsVideoExtension(ext):
		return RolePrimary, true
	case IsSubtitleExtension(ext):
		return RoleCompanion, true
	}
	return "", false
}
