// Package search filters and orders the episode collection. All functions
// are pure: they never mutate their input slice and are safe to re-invoke on
// every query change.
package search

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"recitation-search/pkg/arabic"
	"recitation-search/pkg/domain"
	"recitation-search/pkg/quran"
)

// ListReciters returns one entry per distinct reciter in first-seen order,
// each with the artwork of its first episode. A non-empty query keeps only
// reciters whose normalized name contains the normalized query, or whose raw
// lowercase name contains the raw lowercase query (so plain Latin queries
// match untouched).
func ListReciters(episodes []domain.Episode, query string) []domain.Reciter {
	unique := lo.UniqBy(episodes, func(e domain.Episode) string { return e.Reciter })
	reciters := lo.Map(unique, func(e domain.Episode, _ int) domain.Reciter {
		return domain.Reciter{Name: e.Reciter, Image: e.Image}
	})
	if query == "" {
		return reciters
	}
	normalized := arabic.Normalize(query)
	lowered := strings.ToLower(query)
	return lo.Filter(reciters, func(r domain.Reciter, _ int) bool {
		return strings.Contains(arabic.Normalize(r.Name), normalized) ||
			strings.Contains(strings.ToLower(r.Name), lowered)
	})
}

// FilterEpisodes applies the reciter filter and the search query, then sorts
// by canonical chapter order.
//
// Every whitespace-separated query term must appear as a substring of the
// episode's normalized "surah reciter" text (AND semantics). The sort is
// stable, so episodes of unknown chapters keep their feed order after all
// ranked ones.
func FilterEpisodes(episodes []domain.Episode, reciter, query string) []domain.Episode {
	filtered := episodes
	if reciter != "" && reciter != domain.AllReciters {
		filtered = lo.Filter(filtered, func(e domain.Episode, _ int) bool {
			return e.Reciter == reciter
		})
	}
	if terms := strings.Fields(arabic.Normalize(query)); len(terms) > 0 {
		filtered = lo.Filter(filtered, func(e domain.Episode, _ int) bool {
			haystack := arabic.Normalize(e.Surah + " " + e.Reciter)
			for _, term := range terms {
				if !strings.Contains(haystack, term) {
					return false
				}
			}
			return true
		})
	}

	out := make([]domain.Episode, len(filtered))
	copy(out, filtered)
	sort.SliceStable(out, func(i, j int) bool {
		return quran.RankOf(out[i].Surah) < quran.RankOf(out[j].Surah)
	})
	return out
}
