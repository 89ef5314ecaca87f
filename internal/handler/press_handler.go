package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/service"
)

type pressLinkPayload struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// ListPressLinks returns the press coverage in display order.
func (a *API) ListPressLinks(c *gin.Context) {
	items, err := a.press.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "No se pudieron cargar los enlaces de prensa")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreatePressLink appends a press link at the end of the collection.
func (a *API) CreatePressLink(c *gin.Context) {
	var payload pressLinkPayload
	if !bindJSON(c, &payload, "Solicitud no válida") {
		return
	}

	item, err := a.press.Append(service.PressLinkInput{
		Title:  payload.Title,
		Source: payload.Source,
		URL:    payload.URL,
	})
	if err != nil {
		if errors.Is(err, service.ErrPressLinkInvalidInput) {
			respondError(c, http.StatusBadRequest, "El título y la URL del artículo son obligatorios")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo añadir el enlace")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enlace añadido correctamente", "item": item})
}

// DeletePressLink removes a press link. The UI confirms with the user first.
func (a *API) DeletePressLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de enlace no válido")
		return
	}

	if err := a.press.Delete(id); err != nil {
		if errors.Is(err, service.ErrPressLinkNotFound) {
			respondError(c, http.StatusNotFound, "El enlace no existe")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo eliminar el enlace")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enlace eliminado correctamente"})
}
