package main

import (
	"rental_listing/internal/config" // Configuration
	"rental_listing/internal/db"     // Database helpers
)

// Main entry point for migration. Waits for the database to come up, then
// applies the schema.
func main() {
	cfg := config.LoadConfig() // Load configuration

	database := db.Await(cfg.DSN())
	db.Migrate(database)
}
