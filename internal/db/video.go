package db

import "gorm.io/gorm"

// Video is one entry of the ordered repertoire collection.
type Video struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	EmbedURL    string `gorm:"not null"`
	OrderIndex  int    `gorm:"index"`
}
