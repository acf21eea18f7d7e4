package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
	<channel>
		<title>تلاوات</title>
		<link>https://example.com</link>
		<image>
			<url>https://example.com/channel.jpg</url>
			<title>تلاوات</title>
			<link>https://example.com</link>
		</image>
		<item>
			<title><![CDATA[سورة البقرة | الشيخ محمد]]></title>
			<guid>ep-baqarah-1</guid>
			<enclosure url="https://example.com/baqarah.mp3" length="1024" type="audio/mpeg"/>
			<itunes:image href="https://example.com/baqarah.jpg"/>
			<itunes:duration>3725</itunes:duration>
			<description><![CDATA[<p>تلاوة مباركة من <b>سورة البقرة</b></p>]]></description>
		</item>
		<item>
			<title>Surah Al-Fatihah - Sheikh Ahmad</title>
			<enclosure url="https://example.com/fatihah.mp3" length="512" type="audio/mpeg"/>
		</item>
		<item>
			<title>سورة الملك | الشيخ سعد</title>
			<guid>ep-no-audio</guid>
		</item>
	</channel>
</rss>`

func TestExtract(t *testing.T) {
	episodes := New().Extract(testFeed)
	if len(episodes) != 2 {
		t.Fatalf("expected 2 episodes (item without enclosure dropped), got %d", len(episodes))
	}

	first := episodes[0]
	if first.ID != "ep-baqarah-1" {
		t.Errorf("ID = %q, want feed guid", first.ID)
	}
	if first.Surah != "سورة البقرة" || first.Reciter != "الشيخ محمد" {
		t.Errorf("title parse: surah=%q reciter=%q", first.Surah, first.Reciter)
	}
	if first.URL != "https://example.com/baqarah.mp3" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.Image != "https://example.com/baqarah.jpg" {
		t.Errorf("Image = %q, want item-level artwork", first.Image)
	}
	if first.Duration != "1:02:05" {
		t.Errorf("Duration = %q, want 1:02:05", first.Duration)
	}
	if strings.Contains(first.Description, "<") {
		t.Errorf("Description not stripped to plain text: %q", first.Description)
	}

	second := episodes[1]
	if second.Surah != "Surah Al-Fatihah" || second.Reciter != "Sheikh Ahmad" {
		t.Errorf("title parse: surah=%q reciter=%q", second.Surah, second.Reciter)
	}
	if second.Image != "https://example.com/channel.jpg" {
		t.Errorf("Image = %q, want channel fallback", second.Image)
	}
	if second.Duration != "00:00" {
		t.Errorf("Duration = %q, want default", second.Duration)
	}
	if second.ID == "" {
		t.Error("missing guid should produce a synthesized ID")
	}
}

func TestExtract_DeterministicFallbackID(t *testing.T) {
	e := New()
	a := e.Extract(testFeed)
	b := e.Extract(testFeed)
	if len(a) != 2 || len(b) != 2 {
		t.Fatal("unexpected episode count")
	}
	if a[1].ID != b[1].ID {
		t.Errorf("synthesized ID not stable across parses: %q vs %q", a[1].ID, b[1].ID)
	}
}

func TestExtract_PreservesFeedOrder(t *testing.T) {
	episodes := New().Extract(testFeed)
	if episodes[0].ID != "ep-baqarah-1" {
		t.Error("feed order not preserved")
	}
	if !strings.Contains(episodes[1].Title, "Al-Fatihah") {
		t.Error("feed order not preserved")
	}
}

func TestExtract_InvalidDocumentYieldsEmpty(t *testing.T) {
	if got := New().Extract("definitely not a feed"); len(got) != 0 {
		t.Fatalf("expected empty result for unparsable input, got %d episodes", len(got))
	}
}

func TestExtract_EveryEpisodeHasURL(t *testing.T) {
	for _, ep := range New().Extract(testFeed) {
		if ep.URL == "" {
			t.Errorf("episode %q retained without audio URL", ep.ID)
		}
		if ep.Reciter == "" {
			t.Errorf("episode %q has empty reciter", ep.ID)
		}
	}
}

func TestFetchURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	episodes, err := New().FetchURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchURL failed: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(episodes))
	}
}

func TestFetchURL_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := New().FetchURL(context.Background(), server.URL); err == nil {
		t.Error("expected error for non-200 response, got nil")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "00:00"},
		{"4:05", "4:05"},
		{"1:02:03", "1:02:03"},
		{"245", "04:05"},
		{"3725", "1:02:05"},
		{"garbage", "00:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescriptionImage(t *testing.T) {
	html := `<p>text <img src="https://example.com/art.png" alt=""/> more</p>`
	if got := descriptionImage(html); got != "https://example.com/art.png" {
		t.Errorf("descriptionImage = %q", got)
	}
	if got := descriptionImage("<p>no image</p>"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
