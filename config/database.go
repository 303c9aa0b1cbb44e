package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ArRuslan/mpj-lb2/models"
)

// ConnectDB opens the Postgres connection described by the DB_URL
// environment variable and migrates the schema. Connection failures are
// fatal: the service cannot do anything useful without its store.
func ConnectDB() *gorm.DB {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("DB_URL environment variable is not set")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Failed to connect to the database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.Group{}, &models.Subject{}, &models.ScheduleItem{}); err != nil {
		slog.Error("Failed to migrate the database schema", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to the database")
	return db
}
