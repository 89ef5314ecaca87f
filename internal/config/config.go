package config

import (
	"fmt"
	"os"
	"strings"
)

// Storage backend selectors accepted in STORAGE_BACKEND.
const (
	StorageBackendLocal = "local"
	StorageBackendGCS   = "gcs"
)

// AppConfig aggregates everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	TemplateGlob  string
	StaticDir     string
	SiteBaseURL   string

	StorageBackend   string
	UploadDir        string
	UploadURLPath    string
	GCSBucket        string
	GCSPublicBaseURL string
	StorageFolder    string

	AdminUserName string
	AdminPassword string

	SendGridAPIKey string
	MailFromEmail  string
	MailFromName   string
	AdminEmail     string

	InstagramAccessToken string
	InstagramUserID      string
	FeedSnapshotPath     string
}

// Load reads the application config from the environment, supplying safe
// defaults for anything not set.
func Load() AppConfig {
	port := envOr("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  envOr("DATABASE_PATH", "sitioweb.db"),
		SessionSecret: envOr("SESSION_SECRET", "sitioweb-dev-secret"),
		GinMode:       envOr("GIN_MODE", "release"),
		TemplateGlob:  envOr("TEMPLATE_GLOB", "web/template/*.html"),
		StaticDir:     envOr("STATIC_DIR", "web/static"),
		SiteBaseURL:   envOr("SITE_BASE_URL", "https://luciaherranzsoprano.com"),

		StorageBackend:   envOr("STORAGE_BACKEND", StorageBackendLocal),
		UploadDir:        envOr("UPLOAD_DIR", "web/static/uploads"),
		UploadURLPath:    envOr("UPLOAD_URL_PATH", "/static/uploads"),
		GCSBucket:        strings.TrimSpace(os.Getenv("GCS_BUCKET")),
		GCSPublicBaseURL: strings.TrimSpace(os.Getenv("GCS_PUBLIC_BASE_URL")),
		StorageFolder:    envOr("STORAGE_FOLDER", "galeria"),

		AdminUserName: strings.TrimSpace(os.Getenv("ADMIN_USER_NAME")),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),

		SendGridAPIKey: strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		MailFromEmail:  strings.TrimSpace(os.Getenv("MAIL_FROM_EMAIL")),
		MailFromName:   envOr("MAIL_FROM_NAME", "Lucía Herranz"),
		AdminEmail:     strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),

		InstagramAccessToken: strings.TrimSpace(os.Getenv("INSTAGRAM_ACCESS_TOKEN")),
		InstagramUserID:      strings.TrimSpace(os.Getenv("INSTAGRAM_USER_ID")),
		FeedSnapshotPath:     envOr("FEED_SNAPSHOT_PATH", "web/static/data/instagram.json"),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
