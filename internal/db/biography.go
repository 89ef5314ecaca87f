package db

import "gorm.io/gorm"

// Biography holds the single biography document. Exactly one row exists; it is
// seeded during migration and only ever updated in place.
type Biography struct {
	gorm.Model
	PhotoURL      string
	BiographyText string `gorm:"type:text"`
}
