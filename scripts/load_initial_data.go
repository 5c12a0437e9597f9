package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"aircraft-production-backend/internal/config"
	"aircraft-production-backend/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	seedFile := flag.String("file", "", "seed file (defaults to CATALOG_SEED_FILE)")
	flag.Parse()

	log.Println("Loading reference data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seedFile == "" {
		*seedFile = cfg.CatalogSeedFile
	}

	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == database.DriverSQLite {
		dsn = cfg.SQLitePath
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, dsn, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := database.LoadSeedFile(*seedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	result, err := database.Seed(db, data)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Created %d part types, %d aircraft models, %d teams, %d users (existing rows untouched)",
		result.PartTypes, result.AircraftModels, result.Teams, result.Users)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:      driver,
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
