package service

import (
	"errors"
	"strings"

	"github.com/sopranosite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPressLinkNotFound     = errors.New("press link not found")
	ErrPressLinkInvalidInput = errors.New("invalid press link input")
)

// PressService manages the ordered press coverage collection.
type PressService struct {
	db *gorm.DB
}

// PressLinkInput carries the fields accepted when appending a press link.
type PressLinkInput struct {
	Title  string
	Source string
	URL    string
}

// NewPressService creates a PressService instance.
func NewPressService(gdb *gorm.DB) *PressService {
	return &PressService{db: gdb}
}

// List returns all press links in display order.
func (s *PressService) List() ([]db.PressLink, error) {
	return loadCollection[db.PressLink](s.db)
}

// Append inserts a new press link at the end of the collection.
func (s *PressService) Append(input PressLinkInput) (*db.PressLink, error) {
	title := strings.TrimSpace(input.Title)
	linkURL := strings.TrimSpace(input.URL)
	if title == "" || linkURL == "" {
		return nil, ErrPressLinkInvalidInput
	}

	next, err := nextOrderIndex[db.PressLink](s.db)
	if err != nil {
		return nil, err
	}

	item := db.PressLink{
		Title:      title,
		Source:     strings.TrimSpace(input.Source),
		URL:        linkURL,
		OrderIndex: next,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a press link without renumbering the rest.
func (s *PressService) Delete(id uint) error {
	item, err := findByID[db.PressLink](s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPressLinkNotFound
		}
		return err
	}
	return s.db.Delete(item).Error
}
