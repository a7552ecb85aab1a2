package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/csiedev/meeting-records/internal/infrastructure/database"
	"github.com/csiedev/meeting-records/pkg/config"
)

// Standalone migration runner for CI and production rollouts, where the
// API process starts with DB_AUTO_MIGRATE disabled.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.Migrate(db, logger); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
}
