package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks so "Réseau" slugs to "reseau".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL slug from a title: diacritics folded, lowercased,
// runs of non-alphanumerics collapsed to single hyphens.
func Slugify(title string) string {
	folded, _, err := transform.String(foldTransformer, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
