package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sopranosite/internal/config"
	"github.com/sopranosite/internal/service"
)

// Refreshes the Instagram gallery snapshot. Meant to run on a schedule.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	feed := service.NewFeedService(cfg.InstagramAccessToken, cfg.InstagramUserID, cfg.FeedSnapshotPath)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := feed.Refresh(ctx)
	if err != nil {
		log.Fatalf("failed to refresh feed snapshot: %v", err)
	}

	log.Printf("wrote %d feed items to %s", count, cfg.FeedSnapshotPath)
}
