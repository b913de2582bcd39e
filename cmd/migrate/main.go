// Command migrate applies the database schema for InternHub.
//
// The server auto-migrates outside production; this command is the explicit
// path for production deploys, where Connect leaves the schema alone.
package main

import (
	"log"

	"internhub/internal/config"
	"internhub/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema is up to date")
}
