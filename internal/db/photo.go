package db

import "gorm.io/gorm"

// Photo is one entry of the ordered gallery collection. ImageURL points at the
// asset store object the row owns; both share the same lifetime.
type Photo struct {
	gorm.Model
	Title       string
	Description string
	ImageURL    string `gorm:"not null"`
	OrderIndex  int    `gorm:"index"`
}
