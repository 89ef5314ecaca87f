package handler

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowHome renders the homepage from the singleton document.
func (a *API) ShowHome(c *gin.Context) {
	home, err := a.homepage.Get()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{
			"title": "Inicio",
			"error": "No se pudo cargar la página",
			"year":  time.Now().Year(),
		})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": home.MainTitle,
		"home":  home,
		"year":  time.Now().Year(),
	})
}

// ShowBiography renders the biography text as sanitized markdown, with the
// press links below it.
func (a *API) ShowBiography(c *gin.Context) {
	bio, err := a.biography.Get()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "biography.html", gin.H{
			"title": "Biografía",
			"error": "No se pudo cargar la biografía",
			"year":  time.Now().Year(),
		})
		return
	}

	pressLinks, err := a.press.List()
	if err != nil {
		log.Printf("load press links: %v", err)
	}

	var rendered bytes.Buffer
	if err := markdownEngine.Convert([]byte(bio.BiographyText), &rendered); err != nil {
		log.Printf("render biography markdown: %v", err)
		rendered.Reset()
		rendered.WriteString(template.HTMLEscapeString(bio.BiographyText))
	}

	c.HTML(http.StatusOK, "biography.html", gin.H{
		"title":     "Biografía",
		"photoURL":  bio.PhotoURL,
		"bioHTML":   template.HTML(sanitizer.SanitizeBytes(rendered.Bytes())),
		"press":     pressLinks,
		"year":      time.Now().Year(),
	})
}

// ShowRepertoire renders the video collection.
func (a *API) ShowRepertoire(c *gin.Context) {
	videos, err := a.videos.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "repertoire.html", gin.H{
			"title": "Repertorio",
			"error": "No se pudieron cargar los vídeos",
			"year":  time.Now().Year(),
		})
		return
	}

	c.HTML(http.StatusOK, "repertoire.html", gin.H{
		"title":  "Repertorio",
		"videos": videos,
		"year":   time.Now().Year(),
	})
}

// ShowGallery renders the gallery: the feed snapshot takes priority, the
// photos collection is the fallback.
func (a *API) ShowGallery(c *gin.Context) {
	feedItems, err := a.feed.Load()
	if err != nil {
		log.Printf("load feed snapshot: %v", err)
	}
	if len(feedItems) > 0 {
		c.HTML(http.StatusOK, "gallery.html", gin.H{
			"title": "Galería",
			"feed":  feedItems,
			"year":  time.Now().Year(),
		})
		return
	}

	photos, err := a.photos.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "gallery.html", gin.H{
			"title": "Galería",
			"error": "No se pudo cargar la galería",
			"year":  time.Now().Year(),
		})
		return
	}

	c.HTML(http.StatusOK, "gallery.html", gin.H{
		"title":  "Galería",
		"photos": photos,
		"year":   time.Now().Year(),
	})
}

// ShowContact renders the contact form.
func (a *API) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contacto",
		"year":  time.Now().Year(),
	})
}

// HealthCheck reports whether the database is reachable.
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database handle unavailable",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
