package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle.
var DB *gorm.DB

// Init opens the sqlite database, migrates the schema and seeds the singleton
// content rows. An empty databasePath falls back to sitioweb.db.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "sitioweb.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	if err = DB.AutoMigrate(
		&User{},
		&Video{},
		&Photo{},
		&PressLink{},
		&Biography{},
		&Homepage{},
	); err != nil {
		return err
	}

	return SeedSingletons(DB)
}

// SeedSingletons guarantees the biography and homepage documents exist. The
// admin surface only updates these rows, it never creates them.
func SeedSingletons(gdb *gorm.DB) error {
	var bioCount int64
	if err := gdb.Model(&Biography{}).Count(&bioCount).Error; err != nil {
		return err
	}
	if bioCount == 0 {
		if err := gdb.Create(&Biography{}).Error; err != nil {
			return err
		}
	}

	var homeCount int64
	if err := gdb.Model(&Homepage{}).Count(&homeCount).Error; err != nil {
		return err
	}
	if homeCount == 0 {
		seed := Homepage{
			Subtitle:  "Soprano",
			MainTitle: "Lucía Herranz",
		}
		if err := gdb.Create(&seed).Error; err != nil {
			return err
		}
	}

	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
