package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/service"
)

// SubmitContact validates the contact form and dispatches the notification
// emails. Validation failures never reach the mail provider.
func (a *API) SubmitContact(c *gin.Context) {
	input := service.ContactInput{
		Nombre:     c.PostForm("nombre"),
		Email:      c.PostForm("email"),
		Telefono:   c.PostForm("telefono"),
		TipoEvento: c.PostForm("tipo_evento"),
		Mensaje:    c.PostForm("mensaje"),
	}

	if err := a.contact.Submit(c.Request.Context(), input); err != nil {
		if errors.Is(err, service.ErrContactInvalidInput) {
			respondError(c, http.StatusBadRequest, "Por favor completa nombre, email y mensaje")
			return
		}
		log.Printf("contact submission failed: %v", err)
		respondError(c, http.StatusInternalServerError, "No se pudo enviar el mensaje. Por favor intenta de nuevo.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mensaje enviado correctamente. ¡Gracias!"})
}
