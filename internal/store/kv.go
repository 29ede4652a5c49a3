// Package store is the local persistent store: a single string-valued
// key-value table in SQLite, read once at startup and written on every
// in-memory change.
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Well-known keys. These are the only keys the application writes.
const (
	KeyDishes     = "dishes"
	KeySavedMenus = "savedMenus"
	KeyUtensils   = "utensilsList"
)

type entry struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string
}

func (entry) TableName() string { return "app_state" }

// KV is the key-value store backed by a SQLite file.
type KV struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and
// migrates the state table. Use ":memory:" for tests.
func Open(path string) (*KV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &KV{db: db}, nil
}

// Get returns the value stored under key and whether it was present.
func (s *KV) Get(key string) (string, bool, error) {
	var e entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get %s: %w", key, err)
	}
	return e.Value, true, nil
}

// Put upserts the value under key.
func (s *KV) Put(key, value string) error {
	err := s.db.Save(&entry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	return nil
}
