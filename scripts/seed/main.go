package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/dreamwell/sleep-coach/internal/config"
	"github.com/dreamwell/sleep-coach/internal/repository"
	"github.com/dreamwell/sleep-coach/internal/seed"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}

	logStore, err := repository.NewSleepLogFileStore(filepath.Join(cfg.DataDir, "sleep_logs.json"))
	if err != nil {
		log.Fatalf("Failed to open sleep log store: %v", err)
	}

	if err := seed.Run(context.Background(), logStore); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	if err := logStore.Close(); err != nil {
		log.Fatalf("Failed to flush store: %v", err)
	}
	log.Printf("Sample sleep logs written under %s", cfg.DataDir)
}
