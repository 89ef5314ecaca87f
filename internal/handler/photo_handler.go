package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sopranosite/internal/db"
	"github.com/sopranosite/internal/service"
	"golang.org/x/sync/errgroup"
)

// ListPhotos returns the gallery photos in display order.
func (a *API) ListPhotos(c *gin.Context) {
	items, err := a.photos.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "No se pudieron cargar las fotos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreatePhoto appends one photo: multipart "image" file plus title and
// description fields. The upload happens before the row insert.
func (a *API) CreatePhoto(c *gin.Context) {
	input := service.PhotoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Por favor selecciona una imagen")
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		respondError(c, http.StatusBadRequest, "Solo se permiten archivos de imagen")
		return
	}

	item, err := a.appendPhoto(c, input, fileHeader)
	if err != nil {
		if errors.Is(err, service.ErrPhotoFileMissing) {
			respondError(c, http.StatusBadRequest, "Por favor selecciona una imagen")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo añadir la foto")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Foto añadida correctamente", "item": item})
}

// UploadPhotos appends a batch of photos from the multipart "images" field.
// Files upload concurrently; each file's upload-then-insert stays sequential.
// A failed file does not roll back the ones that already completed, and the
// caller gets a single aggregate error.
func (a *API) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Solicitud no válida")
		return
	}

	files := form.File["images"]
	imageFiles := make([]*multipart.FileHeader, 0, len(files))
	for _, fh := range files {
		if strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
			imageFiles = append(imageFiles, fh)
		}
	}
	if len(imageFiles) == 0 {
		respondError(c, http.StatusBadRequest, "Por favor selecciona archivos de imagen válidos")
		return
	}

	var (
		mu       sync.Mutex
		uploaded []*db.Photo
	)

	g, _ := errgroup.WithContext(c.Request.Context())
	for _, fh := range imageFiles {
		g.Go(func() error {
			input := service.PhotoInput{Title: photoTitleFromFilename(fh.Filename)}
			item, err := a.appendPhoto(c, input, fh)
			if err != nil {
				return err
			}
			mu.Lock()
			uploaded = append(uploaded, item)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al subir algunas imágenes. Por favor intenta de nuevo.",
			"items": uploaded,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fotos añadidas correctamente", "items": uploaded})
}

// DeletePhoto removes a photo and, best effort, its stored image. The UI
// confirms with the user first.
func (a *API) DeletePhoto(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de foto no válido")
		return
	}

	if err := a.photos.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			respondError(c, http.StatusNotFound, "La foto no existe")
			return
		}
		respondError(c, http.StatusInternalServerError, "No se pudo eliminar la foto")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Foto eliminada correctamente"})
}

func (a *API) appendPhoto(c *gin.Context, input service.PhotoInput, fileHeader *multipart.FileHeader) (*db.Photo, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return a.photos.Append(
		c.Request.Context(),
		input,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
}

func photoTitleFromFilename(filename string) string {
	base := filename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}
