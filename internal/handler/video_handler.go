package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/service"
)

type videoPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EmbedURL    string `json:"embed_url"`
}

// ListVideos returns the repertoire videos in display order.
func (a *API) ListVideos(c *gin.Context) {
	items, err := a.videos.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "No se pudieron cargar los vídeos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateVideo appends a video at the end of the collection.
func (a *API) CreateVideo(c *gin.Context) {
	var payload videoPayload
	if !bindJSON(c, &payload, "Solicitud no válida") {
		return
	}

	item, err := a.videos.Append(service.VideoInput{
		Title:       payload.Title,
		Description: payload.Description,
		EmbedURL:    payload.EmbedURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrVideoInvalidInput) {
			respondError(c, http.StatusBadRequest, "El título y la URL del vídeo son obligatorios")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo añadir el vídeo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vídeo añadido correctamente", "item": item})
}

// DeleteVideo removes a video. The UI confirms with the user first.
func (a *API) DeleteVideo(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de vídeo no válido")
		return
	}

	if err := a.videos.Delete(id); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			respondError(c, http.StatusNotFound, "El vídeo no existe")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo eliminar el vídeo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vídeo eliminado correctamente"})
}
