//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// TITLE NORMALIZATION
//
// the three sources were exported independently and do not agree about case, accents,
// or stray whitespace: "Día de Enero" vs "dia de enero  "; an exact-string join would
// silently drop valid matches, so every join runs through NormalizeTitle() instead
//

// NormalizeTitle - canonical join key for a song title: trimmed, lowered, decomposed, and stripped of combining marks
func NormalizeTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// NFKD splits "í" into "i" + U+0301; then drop everything in Mn
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, e := transform.String(t, s)
	if e != nil {
		// a transform failure must not break the join; fall back to the trimmed/lowered form
		return s
	}

	return stripped
}
