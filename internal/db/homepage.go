package db

import "gorm.io/gorm"

// Homepage holds the single homepage document: hero copy, the three service
// blocks and the call-to-action. Seeded during migration, updated in place.
type Homepage struct {
	gorm.Model
	Subtitle     string
	MainTitle    string
	Description  string `gorm:"type:text"`
	HeroImageURL string

	Service1Title       string
	Service1Description string
	Service2Title       string
	Service2Description string
	Service3Title       string
	Service3Description string

	CTATitle       string
	CTADescription string
}
