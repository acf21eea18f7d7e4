package domain

import "time"

// GeneralRecitations is the reciter label substituted when a feed item has no
// identifiable reciter, or only a placeholder one.
const GeneralRecitations = "تلاوات عامة"

// AllReciters is the filter sentinel meaning "do not filter by reciter".
const AllReciters = "All"

// UnknownReciterLiterals are the placeholder reciter labels the source feed is
// known to use. A parsed reciter equal to one of these (after normalization)
// is replaced with GeneralRecitations.
var UnknownReciterLiterals = []string{
	"غير معروف",
	"القارئ غير معروف",
	"unknown",
	"unknown reciter",
}

// Episode represents a single recitation extracted from the podcast feed.
// Immutable once constructed; the collection is rebuilt wholesale on every
// feed fetch.
type Episode struct {
	ID          string    // feed guid, or a deterministic hash when the guid is missing
	Title       string    // raw feed title, kept for fallback display
	Surah       string    // extracted chapter label (Arabic or English, as found)
	Reciter     string    // extracted reciter label, never empty
	URL         string    // audio enclosure URL, never empty for a retained episode
	Image       string    // artwork URL, item-level or channel fallback
	Duration    string    // "MM:SS" (or "H:MM:SS"), "00:00" when the feed omits it
	Description string    // plain-text show notes
	PublishedAt time.Time // zero when the feed omits pubDate
}

// Reciter is a derived summary entry: one per distinct reciter observed,
// carrying a representative artwork URL.
type Reciter struct {
	Name  string
	Image string
}
