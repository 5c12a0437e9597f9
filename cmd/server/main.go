package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aircraft-production-backend/internal/api/routes"
	"aircraft-production-backend/internal/config"
	"aircraft-production-backend/internal/database"
	"aircraft-production-backend/internal/logger"
	"aircraft-production-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "aircraft-production-backend/docs" // This is needed for swag
)

//	@title			Aircraft Production Backend API
//	@version		1.0
//	@description	Tracks aircraft parts from production through assembly and recycling. Production teams produce and recycle parts of their own type; the assembly team builds aircraft from compatible in-stock parts.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == database.DriverSQLite {
		dsn = cfg.SQLitePath
	}
	db, err := database.Initialize(dsn, &database.Options{
		Driver:       cfg.DatabaseDriver,
		MaxOpenConns: cfg.DatabaseMaxOpenConns,
		MaxIdleConns: cfg.DatabaseMaxIdleConns,
		AutoMigrate:  cfg.AutoMigrate,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	seedData := database.DefaultSeedData()
	if cfg.CatalogSeedFile != "" {
		if data, err := database.LoadSeedFile(cfg.CatalogSeedFile); err != nil {
			logrus.WithError(err).Warn("Catalog seed file unavailable, seeding built-in catalog")
		} else {
			seedData = data
		}
	}
	result, err := database.Seed(db, seedData)
	if err != nil {
		logrus.Fatal("Failed to seed reference data: ", err)
	}
	logrus.WithFields(logrus.Fields{
		"part_types":      result.PartTypes,
		"aircraft_models": result.AircraftModels,
		"teams":           result.Teams,
		"users":           result.Users,
	}).Info("Reference data seeded")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, metrics.New())

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
