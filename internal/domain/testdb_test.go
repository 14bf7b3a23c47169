package domain

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with foreign keys enabled so
// cascade rules behave like the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = database.AutoMigrate(
		&User{},
		&Country{},
		&PropertyType{},
		&Unit{},
		&Amenity{},
		&Location{},
		&Property{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return database
}
