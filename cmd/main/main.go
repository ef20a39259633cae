package main

import (
	"context"
	"os"

	"crustacean/tracker/internal/config"
	"crustacean/tracker/internal/container"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting crustacean market tracker...")

	// Band credentials and the ntfy topic live in .env; missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	mode := "ingest"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	if err := app.Run(context.Background(), mode); err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	log.Info("Run finished successfully")
}
