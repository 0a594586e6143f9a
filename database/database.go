// database.go - Handles database connection and schema setup

package database

import (
	"healthcare-backend/models" // Persisted models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the SQLite database at the given path and runs
// migrations, creating tables for all models if they don't exist.
// The returned handle is safe for concurrent use.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Prescription{},
		&models.Admission{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
