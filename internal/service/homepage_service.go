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
	ErrHomepageNotFound    = errors.New("homepage not found")
	ErrHeroImageMissing    = errors.New("hero image is required")
	ErrHomepageTitleNeeded = errors.New("homepage main title is required")
)

// HomepageService maintains the single homepage document.
type HomepageService struct {
	db     *gorm.DB
	assets storage.AssetStore
}

// HomepageInput carries the editable homepage copy.
type HomepageInput struct {
	Subtitle    string
	MainTitle   string
	Description string

	Service1Title       string
	Service1Description string
	Service2Title       string
	Service2Description string
	Service3Title       string
	Service3Description string

	CTATitle       string
	CTADescription string
}

// NewHomepageService creates a HomepageService instance.
func NewHomepageService(gdb *gorm.DB, assets storage.AssetStore) *HomepageService {
	return &HomepageService{db: gdb, assets: assets}
}

// Get returns the homepage document.
func (s *HomepageService) Get() (*db.Homepage, error) {
	var home db.Homepage
	if err := s.db.First(&home).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomepageNotFound
		}
		return nil, err
	}
	return &home, nil
}

// Update replaces the homepage copy. Load-first, last writer wins.
func (s *HomepageService) Update(input HomepageInput) (*db.Homepage, error) {
	if strings.TrimSpace(input.MainTitle) == "" {
		return nil, ErrHomepageTitleNeeded
	}

	home, err := s.Get()
	if err != nil {
		return nil, err
	}

	home.Subtitle = strings.TrimSpace(input.Subtitle)
	home.MainTitle = strings.TrimSpace(input.MainTitle)
	home.Description = strings.TrimSpace(input.Description)
	home.Service1Title = strings.TrimSpace(input.Service1Title)
	home.Service1Description = strings.TrimSpace(input.Service1Description)
	home.Service2Title = strings.TrimSpace(input.Service2Title)
	home.Service2Description = strings.TrimSpace(input.Service2Description)
	home.Service3Title = strings.TrimSpace(input.Service3Title)
	home.Service3Description = strings.TrimSpace(input.Service3Description)
	home.CTATitle = strings.TrimSpace(input.CTATitle)
	home.CTADescription = strings.TrimSpace(input.CTADescription)

	if err := s.db.Save(home).Error; err != nil {
		return nil, err
	}
	return home, nil
}

// UpdateHero uploads the new hero image first, then points the document at
// it. As with the biography portrait, the prior asset is kept.
func (s *HomepageService) UpdateHero(ctx context.Context, filename, contentType string, file io.Reader) (*db.Homepage, error) {
	if file == nil || strings.TrimSpace(filename) == "" {
		return nil, ErrHeroImageMissing
	}

	home, err := s.Get()
	if err != nil {
		return nil, err
	}

	obj, err := s.assets.Upload(ctx, filename, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("upload hero image: %w", err)
	}

	home.HeroImageURL = obj.URL
	if err := s.db.Save(home).Error; err != nil {
		return nil, err
	}
	return home, nil
}
