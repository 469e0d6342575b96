package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the collector and API server read from the
// environment. Optional integrations (Redis, S3, Kafka, scheduler) stay
// disabled while their settings are empty.
type Config struct {
	Port string

	// SourcesFile optionally overrides the built-in feed registry (YAML).
	SourcesFile string
	MaxPerFeed  int

	CSVPath  string
	JSONPath string

	RedisAddr string
	BloomKey  string
	BloomTTL  time.Duration

	S3Bucket string
	S3Region string
	S3Prefix string

	KafkaBrokers []string
	KafkaTopic   string

	// CronSpec enables periodic collection runs; empty disables the scheduler.
	CronSpec string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		SourcesFile: os.Getenv("SOURCES_FILE"),
		MaxPerFeed:  getEnvInt("MAX_PER_FEED", 50),
		CSVPath:     getEnv("DATASET_CSV", "docs/dataset.csv"),
		JSONPath:    getEnv("DATASET_JSON", "docs/dataset.json"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		BloomKey:    getEnv("BLOOM_KEY", "records:bloom"),
		BloomTTL:    time.Duration(getEnvInt("BLOOM_TTL_SECONDS", 86400)) * time.Second,
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Prefix:    os.Getenv("S3_PREFIX"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "gridbrief.records"),
		CronSpec:    os.Getenv("CRON_SPEC"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	log.Printf("config loaded: port=%s max_per_feed=%d cron=%q", cfg.Port, cfg.MaxPerFeed, cfg.CronSpec)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
