package db

import (
	"rental_listing/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Country{},
		&domain.PropertyType{},
		&domain.Unit{},
		&domain.Amenity{},
		&domain.Location{},
		&domain.Property{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
