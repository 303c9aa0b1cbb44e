package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ArRuslan/mpj-lb2/config"
	"github.com/ArRuslan/mpj-lb2/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using process environment")
	}

	db := config.ConnectDB()
	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
