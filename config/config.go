package config

import (
	"os"

	"github.com/sudokulive/sudoku-backend/models"
	"github.com/sudokulive/sudoku-backend/utils/logger"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// SetupDatabase connects to DB and runs migrations
func SetupDatabase() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found, reading environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatalf("DATABASE_URL is required in .env or environment")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatalf("Failed to connect to DB: %v", err)
	}
	DB = db

	if err := db.AutoMigrate(
		&models.Room{},
		&models.Puzzle{},
	); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}

	logger.Infof("Database migration completed")
	return db
}
