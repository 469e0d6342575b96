package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"gridbrief/config"
	"gridbrief/orchestrator"
)

// One-shot collection run: fetch, normalize, dedupe, rank, write artifacts.
func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()
	if _, err := orchestrator.RunOnce(context.Background(), cfg); err != nil {
		log.Fatalf("collection run failed: %v", err)
	}
}
