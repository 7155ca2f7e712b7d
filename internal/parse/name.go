package parse

import (
	"fmt"
	"strings"

	"reelsort/internal/media"
)

// GenerateNewName builds the canonical library filename (without extension)
// for enriched metadata. Movies render as "Title (Year)"; episodes as
// "Title - Season S Episode E - Episode Title". Fields that were never
// resolved are simply omitted.
func GenerateNewName(meta media.Enriched) string {
	var b strings.Builder
	b.WriteString(meta.Title)

	if meta.Type == media.TypeTV {
		if meta.Year > 0 {
			fmt.Fprintf(&b, " (%d)", meta.Year)
		}
		if meta.HasEpisode() {
			if b.Len() > 0 {
				b.WriteString(" - ")
			}
			fmt.Fprintf(&b, "Season %d Episode %d", meta.Season, meta.Episode)
		}
		if meta.EpisodeTitle != "" {
			b.WriteString(" - ")
			b.WriteString(meta.EpisodeTitle)
		}
	} else if meta.Year > 0 {
		fmt.Fprintf(&b, " (%d)", meta.Year)
	}

	return SanitizeFilename(b.String())
}
