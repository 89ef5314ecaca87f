package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sopranosite/internal/db"
	"github.com/sopranosite/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrBiographyNotFound     = errors.New("biography not found")
	ErrBiographyPhotoMissing = errors.New("biography photo is required")
)

// BiographyService maintains the single biography document.
type BiographyService struct {
	db     *gorm.DB
	assets storage.AssetStore
}

// NewBiographyService creates a BiographyService instance.
func NewBiographyService(gdb *gorm.DB, assets storage.AssetStore) *BiographyService {
	return &BiographyService{db: gdb, assets: assets}
}

// Get returns the biography document. The row is seeded at migration time, so
// a missing row means the database was never initialized.
func (s *BiographyService) Get() (*db.Biography, error) {
	var bio db.Biography
	if err := s.db.First(&bio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBiographyNotFound
		}
		return nil, err
	}
	return &bio, nil
}

// UpdateText replaces the biography text. Load-first with no version check:
// the last writer wins.
func (s *BiographyService) UpdateText(text string) (*db.Biography, error) {
	bio, err := s.Get()
	if err != nil {
		return nil, err
	}

	bio.BiographyText = strings.TrimSpace(text)
	if err := s.db.Save(bio).Error; err != nil {
		return nil, err
	}
	return bio, nil
}

// UpdatePhoto uploads the new portrait first, then points the document at it.
// The previous asset is intentionally left in place; its URL may still be
// cached or embedded elsewhere.
func (s *BiographyService) UpdatePhoto(ctx context.Context, filename, contentType string, file io.Reader) (*db.Biography, error) {
	if file == nil || strings.TrimSpace(filename) == "" {
		return nil, ErrBiographyPhotoMissing
	}

	bio, err := s.Get()
	if err != nil {
		return nil, err
	}

	obj, err := s.assets.Upload(ctx, filename, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("upload biography photo: %w", err)
	}

	bio.PhotoURL = obj.URL
	if err := s.db.Save(bio).Error; err != nil {
		return nil, err
	}
	return bio, nil
}
