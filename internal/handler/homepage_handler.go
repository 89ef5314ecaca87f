package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/service"
)

type homepagePayload struct {
	Subtitle    string `json:"subtitle"`
	MainTitle   string `json:"main_title"`
	Description string `json:"description"`

	Service1Title       string `json:"service1_title"`
	Service1Description string `json:"service1_description"`
	Service2Title       string `json:"service2_title"`
	Service2Description string `json:"service2_description"`
	Service3Title       string `json:"service3_title"`
	Service3Description string `json:"service3_description"`

	CTATitle       string `json:"cta_title"`
	CTADescription string `json:"cta_description"`
}

// GetHomepage returns the homepage document.
func (a *API) GetHomepage(c *gin.Context) {
	home, err := a.homepage.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "No se pudo cargar la página de inicio")
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": home})
}

// UpdateHomepage replaces the homepage copy.
func (a *API) UpdateHomepage(c *gin.Context) {
	var payload homepagePayload
	if !bindJSON(c, &payload, "Solicitud no válida") {
		return
	}

	home, err := a.homepage.Update(service.HomepageInput{
		Subtitle:            payload.Subtitle,
		MainTitle:           payload.MainTitle,
		Description:         payload.Description,
		Service1Title:       payload.Service1Title,
		Service1Description: payload.Service1Description,
		Service2Title:       payload.Service2Title,
		Service2Description: payload.Service2Description,
		Service3Title:       payload.Service3Title,
		Service3Description: payload.Service3Description,
		CTATitle:            payload.CTATitle,
		CTADescription:      payload.CTADescription,
	})
	if err != nil {
		if errors.Is(err, service.ErrHomepageTitleNeeded) {
			respondError(c, http.StatusBadRequest, "El título principal es obligatorio")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo guardar la página de inicio")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Página de inicio guardada correctamente", "item": home})
}

// UploadHeroImage replaces the homepage hero image. The previous image stays
// in storage.
func (a *API) UploadHeroImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Por favor selecciona una imagen")
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		respondError(c, http.StatusBadRequest, "Solo se permiten archivos de imagen")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "No se pudo leer la imagen")
		return
	}
	defer file.Close()

	home, err := a.homepage.UpdateHero(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, service.ErrHeroImageMissing) {
			respondError(c, http.StatusBadRequest, "Por favor selecciona una imagen")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo actualizar la imagen")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Imagen actualizada correctamente", "item": home})
}
