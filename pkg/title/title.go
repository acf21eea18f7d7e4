// Package title splits a raw feed episode title into a chapter label and a
// reciter label. The feed mixes two written conventions (Arabic "سورة ..."
// and English "Surah ...") and two separator styles (" - " and "|").
package title

import (
	"strings"

	"recitation-search/pkg/arabic"
	"recitation-search/pkg/domain"
)

const (
	arabicMarker  = "سورة"
	englishMarker = "surah"
)

// Parsed holds the two labels extracted from one title.
type Parsed struct {
	Surah   string
	Reciter string
}

// Parse extracts the chapter and reciter labels from a raw title.
//
// The title is split into segments on "|" (after rewriting " - " to " | ").
// The first segment containing the Arabic chapter marker becomes the chapter
// label; failing that, the first segment containing the English marker. Every
// other segment joins into the reciter label. A title with no marker at all
// falls back to first-segment-is-chapter. An empty or placeholder reciter is
// replaced with the general-recitations sentinel.
func Parse(raw string) Parsed {
	segments := split(raw)

	arabicIdx, englishIdx := -1, -1
	for i, seg := range segments {
		if arabicIdx == -1 && strings.Contains(seg, arabicMarker) {
			arabicIdx = i
		}
		if englishIdx == -1 && strings.Contains(strings.ToLower(seg), englishMarker) {
			englishIdx = i
		}
	}

	var surah string
	switch {
	case arabicIdx >= 0:
		surah = segments[arabicIdx]
	case englishIdx >= 0:
		surah = segments[englishIdx]
	}

	var rest []string
	for i, seg := range segments {
		// An English marker segment stays excluded even when the Arabic
		// one supplied the label.
		if i == arabicIdx || i == englishIdx {
			continue
		}
		rest = append(rest, seg)
	}
	reciter := strings.TrimSpace(strings.Join(rest, " "))

	if surah == "" && len(segments) > 0 {
		surah = segments[0]
		reciter = strings.TrimSpace(strings.Join(segments[1:], " "))
	}

	return Parsed{Surah: surah, Reciter: orSentinel(reciter)}
}

// split rewrites " - " separators to the pipe form, splits, and trims each
// segment. Empty segments are kept so marker indices line up with the
// original split.
func split(raw string) []string {
	raw = strings.ReplaceAll(raw, " - ", " | ")
	segments := strings.Split(raw, "|")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	return segments
}

// orSentinel replaces an empty or placeholder reciter label with the
// general-recitations sentinel.
func orSentinel(reciter string) string {
	if reciter == "" {
		return domain.GeneralRecitations
	}
	norm := arabic.Normalize(reciter)
	for _, lit := range domain.UnknownReciterLiterals {
		if norm == arabic.Normalize(lit) {
			return domain.GeneralRecitations
		}
	}
	return reciter
}
