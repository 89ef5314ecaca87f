package handler

import (
	"github.com/sopranosite/internal/mailer"
	"github.com/sopranosite/internal/service"
	"github.com/sopranosite/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	videos    *service.VideoService
	photos    *service.PhotoService
	press     *service.PressService
	biography *service.BiographyService
	homepage  *service.HomepageService
	contact   *service.ContactService
	feed      *service.FeedService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, assets storage.AssetStore, mail mailer.Mailer, adminEmail string, feed *service.FeedService) *API {
	return &API{
		db:        gdb,
		videos:    service.NewVideoService(gdb),
		photos:    service.NewPhotoService(gdb, assets),
		press:     service.NewPressService(gdb),
		biography: service.NewBiographyService(gdb, assets),
		homepage:  service.NewHomepageService(gdb, assets),
		contact:   service.NewContactService(mail, adminEmail),
		feed:      feed,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
