package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sopranosite/internal/config"
	"github.com/sopranosite/internal/db"
	"github.com/sopranosite/internal/mailer"
	"github.com/sopranosite/internal/router"
	"github.com/sopranosite/internal/service"
	"github.com/sopranosite/internal/storage"

	apihandler "github.com/sopranosite/internal/handler"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	assets, err := buildAssetStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize asset store: %v", err)
	}

	mail := mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFromEmail, cfg.MailFromName)
	feed := service.NewFeedService(cfg.InstagramAccessToken, cfg.InstagramUserID, cfg.FeedSnapshotPath)

	api := apihandler.NewAPI(db.DB, assets, mail, cfg.AdminEmail, feed)
	r := router.SetupRouter(cfg, api)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func buildAssetStore(cfg config.AppConfig) (storage.AssetStore, error) {
	if cfg.StorageBackend == config.StorageBackendGCS {
		return storage.NewGCSStore(context.Background(), cfg.GCSBucket, cfg.StorageFolder, cfg.GCSPublicBaseURL)
	}
	return storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPath), nil
}
