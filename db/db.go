package db

import (
	"os"
	"path/filepath"

	"yumicuit/config"
	"yumicuit/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Connect opens the local journal store (sqlite) and migrates the record
// table. The store is client-side state; the relay never touches it.
func Connect(conf config.Configuration) (*gorm.DB, error) {
	path := conf.DBPath
	if path == "" {
		path = "db/journal.db"
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		config.Logger.Errorw("failed to open journal store", "path", path, "error", err)
		return nil, err
	}

	db.AutoMigrate(&models.DreamRecord{})

	return db, nil
}
