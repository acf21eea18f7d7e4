// Package feed turns the podcast RSS document into episode records. The feed
// titles carry the chapter/reciter information as free text; the structured
// fields (enclosure, guid, artwork, duration) map directly.
package feed

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"recitation-search/pkg/domain"
	"recitation-search/pkg/httpclient"
	"recitation-search/pkg/title"
)

const defaultDuration = "00:00"

// Extractor parses podcast RSS into episode records.
type Extractor struct {
	parser *gofeed.Parser
	client *httpclient.HTTPClient
}

// New creates a new feed extractor.
func New() *Extractor {
	return &Extractor{
		parser: gofeed.NewParser(),
		client: httpclient.NewClient(httpclient.BrowserClient),
	}
}

// FetchURL fetches and extracts the feed at feedURL.
func (e *Extractor) FetchURL(ctx context.Context, feedURL string) ([]domain.Episode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return e.Parse(resp.Body)
}

// Parse extracts episodes from a feed document, preserving feed item order.
// Items without an audio enclosure are dropped; every other missing field
// falls back to a default.
func (e *Extractor) Parse(r io.Reader) ([]domain.Episode, error) {
	f, err := e.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	channelArt := channelImage(f)
	episodes := make([]domain.Episode, 0, len(f.Items))
	for _, item := range f.Items {
		audio := audioURL(item)
		if audio == "" {
			continue
		}
		parsed := title.Parse(item.Title)
		ep := domain.Episode{
			ID:          itemID(item, audio),
			Title:       item.Title,
			Surah:       parsed.Surah,
			Reciter:     parsed.Reciter,
			URL:         audio,
			Image:       itemImage(item, channelArt),
			Duration:    formatDuration(itemDuration(item)),
			Description: plainText(item.Description),
		}
		if item.PublishedParsed != nil {
			ep.PublishedAt = *item.PublishedParsed
		}
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

// Extract is the lenient entry point: any whole-feed failure degrades to an
// empty collection. Callers that need to distinguish an empty feed from a
// broken one use Parse or FetchURL directly.
func (e *Extractor) Extract(raw string) []domain.Episode {
	episodes, err := e.Parse(strings.NewReader(raw))
	if err != nil {
		return nil
	}
	return episodes
}

// audioURL picks the item's playable enclosure: the first audio-typed one,
// falling back to the first enclosure with any URL.
func audioURL(item *gofeed.Item) string {
	var fallback string
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if strings.HasPrefix(enc.Type, "audio") {
			return enc.URL
		}
		if fallback == "" {
			fallback = enc.URL
		}
	}
	return fallback
}

// itemID returns the feed guid, or a deterministic hash of title and audio
// URL when the guid is missing, so identity survives re-fetches.
func itemID(item *gofeed.Item, audio string) string {
	if item.GUID != "" {
		return item.GUID
	}
	sum := sha256.Sum256([]byte(item.Title + "|" + audio))
	return hex.EncodeToString(sum[:8])
}

// itemImage resolves artwork through the fallback chain: item image, iTunes
// item image, first <img> in the description HTML, channel image.
func itemImage(item *gofeed.Item, channelArt string) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}
	if src := descriptionImage(item.Description); src != "" {
		return src
	}
	return channelArt
}

// descriptionImage pulls the first <img> src out of an HTML description.
func descriptionImage(html string) string {
	if !strings.Contains(html, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return strings.TrimSpace(src)
}

// channelImage resolves the channel-level default artwork, empty when the
// feed header carries none.
func channelImage(f *gofeed.Feed) string {
	if f.Image != nil && f.Image.URL != "" {
		return f.Image.URL
	}
	if f.ITunesExt != nil && f.ITunesExt.Image != "" {
		return f.ITunesExt.Image
	}
	return ""
}

func itemDuration(item *gofeed.Item) string {
	if item.ITunesExt != nil {
		return item.ITunesExt.Duration
	}
	return ""
}

// formatDuration normalizes an iTunes duration, which the feed writes either
// as clock text ("4:05", "1:02:03") or as plain seconds.
func formatDuration(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultDuration
	}
	if strings.Contains(raw, ":") {
		return raw
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return defaultDuration
	}
	if h := secs / 3600; h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, secs%3600/60, secs%60)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// plainText strips an HTML description down to whitespace-collapsed text.
func plainText(html string) string {
	html = strings.TrimSpace(html)
	if html == "" || !strings.Contains(html, "<") {
		return html
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
