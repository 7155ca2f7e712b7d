package textutil

import "strings"

// localeTokens are trailing stem tokens that identify a subtitle variant
// rather than the media itself: ISO language codes, language names, and
// subtitle format markers.
var localeTokens = map[string]struct{}{
	"en": {}, "eng": {}, "english": {},
	"es": {}, "spa": {}, "spanish": {},
	"fr": {}, "fre": {}, "fra": {}, "french": {},
	"de": {}, "ger": {}, "deu": {}, "german": {},
	"it": {}, "ita": {}, "italian": {},
	"pt": {}, "por": {}, "portuguese": {},
	"ja": {}, "jpn": {}, "japanese": {},
	"zh": {}, "chi": {}, "chs": {}, "cht": {}, "chinese": {},
	"ko": {}, "kor": {}, "korean": {},
	"ru": {}, "rus": {}, "russian": {},
	"nl": {}, "dut": {}, "nld": {}, "dutch": {},
	"sv": {}, "swe": {}, "swedish": {},
	"no": {}, "nor": {}, "norwegian": {},
	"da": {}, "dan": {}, "danish": {},
	"fi": {}, "fin": {}, "finnish": {},
	"pl": {}, "pol": {}, "polish": {},
	"ar": {}, "ara": {}, "arabic": {},
	"hi": {}, "hin": {}, "hindi": {},
	"forced": {}, "sdh": {}, "cc": {}, "sub": {}, "subs": {},
}

// NormalizeStem lowercases a file stem, strips trailing locale/format
// suffix tokens (language codes, "forced", "sdh", "cc"), and removes all
// punctuation so that stems from differently punctuated release names
// compare equal.
func NormalizeStem(stem string) string {
	tokens := splitStemTokens(strings.ToLower(stem))
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if _, ok := localeTokens[last]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, "")
}

// StemsRelated reports whether two normalized stems refer to the same
// release: one must contain the other, case differences already folded by
// NormalizeStem.
func StemsRelated(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func splitStemTokens(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		}
		return true
	})
}
