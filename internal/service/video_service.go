package service

import (
	"errors"
	"strings"

	"github.com/sopranosite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound     = errors.New("video not found")
	ErrVideoInvalidInput = errors.New("invalid video input")
)

// VideoService manages the ordered repertoire video collection.
type VideoService struct {
	db *gorm.DB
}

// VideoInput carries the fields accepted when appending a video.
type VideoInput struct {
	Title       string
	Description string
	EmbedURL    string
}

// NewVideoService creates a VideoService instance.
func NewVideoService(gdb *gorm.DB) *VideoService {
	return &VideoService{db: gdb}
}

// List returns all videos in display order.
func (s *VideoService) List() ([]db.Video, error) {
	return loadCollection[db.Video](s.db)
}

// Append inserts a new video at the end of the collection.
func (s *VideoService) Append(input VideoInput) (*db.Video, error) {
	title := strings.TrimSpace(input.Title)
	embedURL := strings.TrimSpace(input.EmbedURL)
	if title == "" || embedURL == "" {
		return nil, ErrVideoInvalidInput
	}

	next, err := nextOrderIndex[db.Video](s.db)
	if err != nil {
		return nil, err
	}

	item := db.Video{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		EmbedURL:    embedURL,
		OrderIndex:  next,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a video. Remaining order_index values are left untouched.
func (s *VideoService) Delete(id uint) error {
	item, err := findByID[db.Video](s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	return s.db.Delete(item).Error
}
