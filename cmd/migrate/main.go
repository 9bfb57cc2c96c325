package main

import (
	"os" // Standard streams

	"recipe_hub/internal/config"  // Custom import path (Config)
	"recipe_hub/internal/db"      // Custom import path (Database)
	"recipe_hub/internal/logging" // Custom import path (Logging)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	if err := logging.Setup(os.Stdout, cfg.LogLevel, cfg.IsProd); err != nil {
		logrus.Fatalf("failed to set up logger: %v", err)
	}

	gdb, err := db.Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatal(err) // Log fatal error if migration fails
	}
}
