package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/service"
)

type biographyPayload struct {
	BiographyText string `json:"biography_text"`
}

// GetBiography returns the biography document.
func (a *API) GetBiography(c *gin.Context) {
	bio, err := a.biography.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "No se pudo cargar la biografía")
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": bio})
}

// UpdateBiography replaces the biography text.
func (a *API) UpdateBiography(c *gin.Context) {
	var payload biographyPayload
	if !bindJSON(c, &payload, "Solicitud no válida") {
		return
	}

	bio, err := a.biography.UpdateText(payload.BiographyText)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "No se pudo guardar la biografía")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Biografía guardada correctamente", "item": bio})
}

// UploadBiographyPhoto replaces the biography portrait. The previous image
// stays in storage.
func (a *API) UploadBiographyPhoto(c *gin.Context) {
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

	bio, err := a.biography.UpdatePhoto(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, service.ErrBiographyPhotoMissing) {
			respondError(c, http.StatusBadRequest, "Por favor selecciona una imagen")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo actualizar la foto")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Foto actualizada correctamente", "item": bio})
}
