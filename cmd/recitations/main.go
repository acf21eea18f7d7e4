package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"recitation-search/pkg/domain"
	"recitation-search/pkg/feed"
	"recitation-search/pkg/player"
	"recitation-search/pkg/search"
)

func main() {
	var (
		feedURL = flag.String("feed", "https://anchor.fm/s/recitations/podcast/rss", "Podcast RSS feed URL")
		reciter = flag.String("reciter", domain.AllReciters, "Only list episodes of this reciter")
		query   = flag.String("query", "", "Search query (Arabic or English, matched on surah and reciter)")
		list    = flag.Bool("reciters", false, "List reciters instead of episodes")
		state   = flag.String("state", "", "Path to the playback state database (optional)")
		max     = flag.Int("max", 50, "Max episodes to print (<=0 means no limit)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	extractor := feed.New()
	episodes, err := extractor.FetchURL(ctx, *feedURL)
	if err != nil {
		log.Fatalf("Failed to extract feed: %v", err)
	}
	log.Printf("Extracted %d episodes in %s", len(episodes), time.Since(start))

	if *state != "" {
		store, err := player.Open(*state)
		if err != nil {
			log.Fatalf("Failed to open playback state: %v", err)
		}
		defer store.Close()

		if snap, ok, err := store.Load(ctx); err != nil {
			log.Printf("Failed to load playback state: %v", err)
		} else if ok {
			for _, ep := range episodes {
				if ep.ID == snap.EpisodeID {
					fmt.Printf("Resume: %s — %s at %.0fs\n\n", ep.Surah, ep.Reciter, snap.Position)
					break
				}
			}
		}
	}

	if *list {
		reciters := search.ListReciters(episodes, *query)
		fmt.Printf("%d reciters:\n", len(reciters))
		for _, r := range reciters {
			fmt.Printf("  %s\n", r.Name)
		}
		return
	}

	matched := search.FilterEpisodes(episodes, *reciter, *query)
	limit := len(matched)
	if *max > 0 && *max < limit {
		limit = *max
	}
	fmt.Printf("%d episodes match. Showing %d:\n\n", len(matched), limit)
	for i := 0; i < limit; i++ {
		ep := matched[i]
		fmt.Printf("%-40s %-30s %8s\n", ep.Surah, ep.Reciter, ep.Duration)
	}
}
