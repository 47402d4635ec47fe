package main

import (
	"fmt"
	"os"

	"financebook/internal/config"
	"financebook/internal/database"
	"financebook/internal/logger"
	"financebook/internal/server"
	"financebook/internal/storage"
)

// @title           FinanceBook API
// @version         1.0
// @description     FinanceBook tracks incomes and expenses with hierarchical categories, recipients and invoice documents.

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("closing database", "error", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	store, err := storage.New(appConfig.UploadDir, appConfig.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	router := server.NewRouter(dbManager.DB(), store, appConfig)

	log.Infow("Starting FinanceBook server", "port", appConfig.Port, "db_driver", dbConfig.Driver, "upload_dir", appConfig.UploadDir)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
