package parse

import (
	"regexp"
	"strconv"
	"strings"

	"reelsort/internal/media"
)

// Rule pairs a compiled pattern with an extraction function. Rules are
// evaluated in order by parseBase; first match wins. New filename
// conventions become new table entries, not edits to existing patterns.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(base string, idx []int) media.Metadata
}

// Rules is the ordered classification table. Episode markers outrank year
// tokens so "Show 2019 S01E02" types as TV with year 2019, not as a movie.
var Rules = []Rule{
	{"sxxexx", reSeasonEpisode, extractSeasonEpisode},
	{"nxnn", reNxNN, extractNxNN},
	{"season-episode-words", reSeasonEpisodeWords, extractSeasonEpisodeWords},
}

var (
	// reEpisodeVariant normalizes alternate marker spellings (S03EP01,
	// S03.EP01) to the canonical SxxEyy form before rule matching.
	reEpisodeVariant = regexp.MustCompile(`(?i)\bS(\d{1,2})[\s._-]*EP(\d{1,3})\b`)

	reSeasonEpisode = regexp.MustCompile(
		`(?i)(^|[^a-z0-9])s(\d{1,2})[\s._-]?e(\d{1,3})([^a-z0-9]|$)`)

	reNxNN = regexp.MustCompile(
		`(^|[^0-9])(\d{1,2})[xX](\d{2,3})([^0-9]|$)`)

	reSeasonEpisodeWords = regexp.MustCompile(
		`(?i)(^|[^a-z0-9])season[\s._-]*(\d{1,2})[\s._-]*episode[\s._-]*(\d{1,3})`)

	reBracketGroup = regexp.MustCompile(`\[[^\]]*\]`)

	reYearToken = regexp.MustCompile(`^[\(\[]?((19|20)\d{2})[\)\]]?$`)

	// reTrailingYear is the fallback for titles that end in a four-digit
	// year without a separating token of their own.
	reTrailingYear = regexp.MustCompile(`^(.*?)[\s._-]*((19|20)\d{2})$`)

	// rePlaceholderTitle matches titles that are really just residual
	// season/episode/disc markers and must not be treated as real titles.
	rePlaceholderTitle = regexp.MustCompile(
		`(?i)^(s\d{1,2}(e\d{1,3})?|e\d{1,3}|season[\s._-]*\d{1,2}|episode[\s._-]*\d{1,3}|disc[\s._-]*\d+|part[\s._-]*\d+)$`)

	// reBareEpisode matches names that are nothing but an episode marker;
	// the season is expected to come from folder context.
	reBareEpisode = regexp.MustCompile(`(?i)^(?:e|ep|episode)[\s._-]*(\d{1,3})$`)

	// reSeasonFolder matches directory names that carry only a season.
	reSeasonFolder = regexp.MustCompile(`(?i)^(season[\s._-]*|s)(\d{1,2})$`)

	// reTrailingSeason strips a season marker left at the end of a
	// folder-derived title ("Breaking Bad S05" -> "Breaking Bad").
	reTrailingSeason = regexp.MustCompile(`(?i)[\s._-]+(season[\s._-]*(\d{1,2})|s(\d{1,2}))$`)
)

// releaseTokens are the torrent-release tags stripped before title
// inference: resolutions, sources, codecs, audio formats, and release
// qualifiers. Checked case-insensitively against separator-split tokens.
var releaseTokens = buildTokenSet(
	// resolution
	[]string{"480p", "480i", "576p", "576i", "720p", "720i", "1080p", "1080i", "2160p", "4k", "uhd", "ultrahd"},
	// source
	[]string{"bluray", "blu-ray", "bdrip", "brrip", "bdremux", "remux", "dvdrip", "dvd", "dvdscr",
		"webrip", "web-dl", "webdl", "web", "hdtv", "pdtv", "tvrip", "hdrip", "cam", "telesync", "screener"},
	// video codec
	[]string{"x264", "x265", "h264", "h265", "h.264", "h.265", "hevc", "avc", "xvid", "divx", "av1", "vp9", "10bit", "8bit"},
	// audio
	[]string{"aac", "ac3", "eac3", "dts", "dts-hd", "truehd", "atmos", "flac", "mp3", "opus", "ddp", "dd5", "ddp5"},
	// qualifiers
	[]string{"proper", "repack", "rerip", "internal", "limited", "extended", "unrated", "remastered",
		"hdr", "hdr10", "dv", "dovi", "imax", "multi", "dual", "subbed", "dubbed", "complete", "sample"},
)

func buildTokenSet(groups ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range groups {
		for _, token := range group {
			set[token] = struct{}{}
		}
	}
	return set
}

// reResolutionPair matches dimension tokens like 1920x1080.
var reResolutionPair = regexp.MustCompile(`^\d{3,4}[xX]\d{3,4}$`)

func isReleaseToken(token string) bool {
	if _, ok := releaseTokens[strings.ToLower(token)]; ok {
		return true
	}
	return reResolutionPair.MatchString(token)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// group returns the text of capture group n from a FindStringSubmatchIndex
// result, or "" when the group did not participate.
func group(base string, idx []int, n int) string {
	if 2*n+1 >= len(idx) || idx[2*n] < 0 {
		return ""
	}
	return base[idx[2*n]:idx[2*n+1]]
}

func extractSeasonEpisode(base string, idx []int) media.Metadata {
	title, year := titleAndYear(base[:idx[0]])
	return media.Metadata{
		Title:   title,
		Year:    year,
		Season:  atoi(group(base, idx, 2)),
		Episode: atoi(group(base, idx, 3)),
		Type:    media.TypeTV,
	}
}

func extractNxNN(base string, idx []int) media.Metadata {
	title, year := titleAndYear(base[:idx[0]])
	return media.Metadata{
		Title:   title,
		Year:    year,
		Season:  atoi(group(base, idx, 2)),
		Episode: atoi(group(base, idx, 3)),
		Type:    media.TypeTV,
	}
}

func extractSeasonEpisodeWords(base string, idx []int) media.Metadata {
	title, year := titleAndYear(base[:idx[0]])
	return media.Metadata{
		Title:   title,
		Year:    year,
		Season:  atoi(group(base, idx, 2)),
		Episode: atoi(group(base, idx, 3)),
		Type:    media.TypeTV,
	}
}

// titleAndYear tokenizes a name segment, pulls out the last delimited year
// token (never the leading token, so "2001 A Space Odyssey 1968" keeps its
// numeric opening), and truncates the remainder at the first release tag.
func titleAndYear(segment string) (string, int) {
	work := strings.NewReplacer(".", " ", "_", " ").Replace(segment)
	work = reBracketGroup.ReplaceAllString(work, " ")
	tokens := strings.Fields(work)

	year := 0
	for i := len(tokens) - 1; i >= 1; i-- {
		m := reYearToken.FindStringSubmatch(tokens[i])
		if m == nil {
			continue
		}
		year = atoi(m[1])
		tokens = append(tokens[:i], tokens[i+1:]...)
		break
	}

	cut := len(tokens)
	for i, token := range tokens {
		if isReleaseToken(token) {
			cut = i
			break
		}
	}
	title := strings.Join(tokens[:cut], " ")
	title = strings.Trim(title, "- ")
	return title, year
}
