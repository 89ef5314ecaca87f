package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/sopranosite/internal/db"
	"github.com/sopranosite/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrPhotoFileMissing = errors.New("photo file is required")
)

// PhotoService manages the ordered gallery collection. Each photo row owns
// one asset store object, created before the row and removed with it.
type PhotoService struct {
	db     *gorm.DB
	assets storage.AssetStore
}

// PhotoInput carries the text fields accepted when appending a photo.
type PhotoInput struct {
	Title       string
	Description string
}

// NewPhotoService creates a PhotoService instance.
func NewPhotoService(gdb *gorm.DB, assets storage.AssetStore) *PhotoService {
	return &PhotoService{db: gdb, assets: assets}
}

// List returns all photos in display order.
func (s *PhotoService) List() ([]db.Photo, error) {
	return loadCollection[db.Photo](s.db)
}

// Append uploads the image first and only then inserts the row, so a failed
// upload leaves the collection untouched. If the insert fails after a
// successful upload the object is not rolled back.
func (s *PhotoService) Append(ctx context.Context, input PhotoInput, filename, contentType string, file io.Reader) (*db.Photo, error) {
	if file == nil || strings.TrimSpace(filename) == "" {
		return nil, ErrPhotoFileMissing
	}

	obj, err := s.assets.Upload(ctx, filename, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	next, err := nextOrderIndex[db.Photo](s.db)
	if err != nil {
		return nil, err
	}

	item := db.Photo{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    obj.URL,
		OrderIndex:  next,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the owned asset first, best effort, then the row. An asset
// store failure is logged and never blocks the row delete.
func (s *PhotoService) Delete(ctx context.Context, id uint) error {
	item, err := findByID[db.Photo](s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	if key := storage.KeyFromURL(item.ImageURL); key != "" {
		if err := s.assets.Remove(ctx, key); err != nil {
			log.Printf("delete photo asset %s: %v", key, err)
		}
	}

	return s.db.Delete(item).Error
}
