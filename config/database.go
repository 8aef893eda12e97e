package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sonerk/kelimeweb/models"
)

// Connect opens the database and migrates the schema. Postgres is used when
// DB_URL is set; otherwise a local SQLite file.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DBURL != "" {
		dialector = postgres.Open(cfg.DBURL)
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if cfg.DBURL == "" {
		// SQLite has a single writer; keep the pool at one connection.
		db.Exec("PRAGMA foreign_keys = ON")
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.WordEntry{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}

	return db, nil
}
