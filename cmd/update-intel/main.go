// Command update-intel refreshes the versioned intel-data document: news
// refs, threat indicators (preserving curated keys), GPS status timestamp,
// and the monotonic version counter. It is a one-shot invocation meant for
// CI schedules; a missing baseline document exits non-zero.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"mil-briefing/config"
	"mil-briefing/news"
	"mil-briefing/publish"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	updater := publish.NewIntelUpdater(cfg.IntelPath, news.NewFetcher(nil))

	if err := updater.Update(context.Background()); err != nil {
		log.Fatalf("intel update failed: %v", err)
	}
	log.Println("intel update complete")
}
