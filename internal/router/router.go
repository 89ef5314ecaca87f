package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/config"
	"github.com/sopranosite/internal/handler"
)

// SetupRouter configures the Gin engine and all routes.
func SetupRouter(cfg config.AppConfig, api *handler.API) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("sitioweb_session", store))

	if cfg.TemplateGlob != "" {
		r.LoadHTMLGlob(cfg.TemplateGlob)
	}
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	r.GET("/health", api.HealthCheck)

	// Public pages
	r.GET("/", api.ShowHome)
	r.GET("/biografia", api.ShowBiography)
	r.GET("/repertorio", api.ShowRepertoire)
	r.GET("/galeria", api.ShowGallery)
	r.GET("/contacto", api.ShowContact)
	r.POST("/contacto", api.SubmitContact)

	// Admin surface
	admin := r.Group("/admin")
	{
		admin.GET("/login", handler.ShowLoginPage)
		admin.POST("/login", handler.Login)
		admin.GET("/logout", handler.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", api.ShowDashboard)

			apiGroup := auth.Group("/api")
			{
				apiGroup.GET("/videos", api.ListVideos)
				apiGroup.POST("/videos", api.CreateVideo)
				apiGroup.DELETE("/videos/:id", api.DeleteVideo)

				apiGroup.GET("/photos", api.ListPhotos)
				apiGroup.POST("/photos", api.CreatePhoto)
				apiGroup.POST("/photos/batch", api.UploadPhotos)
				apiGroup.DELETE("/photos/:id", api.DeletePhoto)

				apiGroup.GET("/press", api.ListPressLinks)
				apiGroup.POST("/press", api.CreatePressLink)
				apiGroup.DELETE("/press/:id", api.DeletePressLink)

				apiGroup.GET("/biography", api.GetBiography)
				apiGroup.PUT("/biography", api.UpdateBiography)
				apiGroup.POST("/biography/photo", api.UploadBiographyPhoto)

				apiGroup.GET("/homepage", api.GetHomepage)
				apiGroup.PUT("/homepage", api.UpdateHomepage)
				apiGroup.POST("/homepage/hero", api.UploadHeroImage)
			}
		}
	}

	return r
}
