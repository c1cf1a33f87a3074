package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"voteverse-backend/internal/config"
	"voteverse-backend/internal/database"
	"voteverse-backend/internal/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	log.Printf("Loading initial data from %s...", dataDir)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	report, err := seed.LoadAndApply(db, dataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("Voters: %d created", report.Voters)
	log.Printf("Elections: %d created", report.Elections)
	log.Printf("Positions: %d created", report.Positions)
	log.Printf("Candidates: %d created", report.Candidates)
	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
