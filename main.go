package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"recitation-search/pkg/feed"
)

func main() {
	// Default to the public recitations feed
	feedURL := "https://anchor.fm/s/recitations/podcast/rss"

	if len(os.Args) > 1 {
		feedURL = os.Args[1]
	}

	extractor := feed.New()

	episodes, err := extractor.FetchURL(context.Background(), feedURL)
	if err != nil {
		log.Fatalf("Failed to extract feed: %v", err)
	}

	// Print first 10 episodes
	maxEpisodes := 10
	if len(episodes) < maxEpisodes {
		maxEpisodes = len(episodes)
	}

	fmt.Printf("Found %d episodes. Showing first %d:\n\n", len(episodes), maxEpisodes)

	for i := 0; i < maxEpisodes; i++ {
		ep := episodes[i]
		fmt.Printf("Episode %d:\n", i+1)
		fmt.Printf("  Surah: %s\n", ep.Surah)
		fmt.Printf("  Reciter: %s\n", ep.Reciter)
		fmt.Printf("  Duration: %s\n", ep.Duration)
		fmt.Printf("  Audio: %s\n", ep.URL)
		fmt.Println()
	}
}
