// Package arabic canonicalizes Arabic text for comparison. The source feed is
// inconsistent about hamza placement, taa marbuta and diacritics, so search
// and ordering work on normalized forms rather than the raw labels.
package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// arabicDiacritics covers the combining marks of the Arabic block: the
// annotation signs (U+0610..U+061A), the harakat and tanwin
// (U+064B..U+065F), the superscript alef (U+0670) and the small high marks
// (U+06D6..U+06ED).
var arabicDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061A, Stride: 1},
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06ED, Stride: 1},
	},
}

// letterFolds unifies the letter forms the feed spells interchangeably.
var letterFolds = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ة", "ه",
	"ى", "ي",
)

// Normalize returns the canonical comparison form of s: hamza-bearing alef
// variants folded to bare alef, taa marbuta to haa, alef maksura to yaa,
// Arabic diacritics stripped, and any embedded Latin case-folded. Pure and
// idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = letterFolds.Replace(s)
	// A fresh chain per call keeps Normalize reentrant; the transformers
	// carry per-use state.
	out, _, err := transform.String(transform.Chain(
		runes.Remove(runes.In(arabicDiacritics)),
		cases.Fold(),
	), s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
