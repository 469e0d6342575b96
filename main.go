package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"gridbrief/api"
	"gridbrief/config"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()
	server := api.NewServer(cfg)

	if cfg.CronSpec != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.CronSpec, func() {
			server.Refresh(context.Background())
		}); err != nil {
			log.Fatalf("invalid CRON_SPEC %q: %v", cfg.CronSpec, err)
		}
		c.Start()
		log.Printf("Scheduler started with spec %q", cfg.CronSpec)
	}

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/records")
	log.Println("  POST /api/refresh")

	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
