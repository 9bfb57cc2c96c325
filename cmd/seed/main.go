package main

import (
	"context" // Context for database operations
	"flag"    // Command line flags
	"os"      // Standard streams

	"recipe_hub/internal/config"  // Custom import path (Config)
	"recipe_hub/internal/db"      // Custom import path (Database)
	"recipe_hub/internal/logging" // Custom import path (Logging)
	"recipe_hub/internal/seed"    // Custom import path (Seeding)

	"github.com/brianvoe/gofakeit/v7" // Fake data generator
	"github.com/sirupsen/logrus"      // Logrus for structured logging
)

// Main entry point for seeding
func main() {
	users := flag.Int("users", 5, "number of users to create")
	recipes := flag.Int("recipes", 3, "recipes per user")
	password := flag.String("password", "password", "password for every seeded user")
	fakerSeed := flag.Uint64("seed", 0, "faker seed, 0 for random")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration
	if err := logging.Setup(os.Stdout, cfg.LogLevel, cfg.IsProd); err != nil {
		logrus.Fatalf("failed to set up logger: %v", err)
	}

	gdb, err := db.Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatal(err)
	}

	res, err := seed.Run(context.Background(), gdb, gofakeit.New(*fakerSeed), seed.Options{
		Users:          *users,
		RecipesPerUser: *recipes,
		Password:       *password,
	})
	if err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"users":   res.Users,   // Users inserted
		"recipes": res.Recipes, // Recipes inserted
	}).Info("Seeding completed.")
}
