package service

import (
	"github.com/sopranosite/internal/db"
	"gorm.io/gorm"
)

// collectionModel constrains the ordered content collections. Each table
// carries an order_index column driving display order.
type collectionModel interface {
	db.Video | db.Photo | db.PressLink
}

// loadCollection returns every row of a collection sorted for display.
// Duplicate order_index values, possible when two appends race, tie-break by
// id so the order stays stable.
func loadCollection[T collectionModel](gdb *gorm.DB) ([]T, error) {
	var items []T
	if err := gdb.Order("order_index ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// nextOrderIndex computes the append position from a fresh snapshot: one past
// the current maximum order_index, or 0 for an empty collection. Gaps left by
// deletions are never reused, and two concurrent appends can still compute
// the same value.
func nextOrderIndex[T collectionModel](gdb *gorm.DB) (int, error) {
	var model T
	var next int
	if err := gdb.Model(&model).
		Select("COALESCE(MAX(order_index), -1) + 1").
		Scan(&next).Error; err != nil {
		return 0, err
	}
	return next, nil
}

// findByID fetches one collection row by id.
func findByID[T collectionModel](gdb *gorm.DB, id uint) (*T, error) {
	var item T
	if err := gdb.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
