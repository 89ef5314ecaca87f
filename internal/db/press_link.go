package db

import "gorm.io/gorm"

// PressLink is one entry of the ordered press coverage collection.
type PressLink struct {
	gorm.Model
	Title      string `gorm:"not null"`
	Source     string
	URL        string `gorm:"not null"`
	OrderIndex int    `gorm:"index"`
}
