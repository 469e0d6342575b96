package orchestrator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gridbrief/common"
	"gridbrief/config"
	"gridbrief/dedup"
	"gridbrief/feeds"
	"gridbrief/normalize"
	"gridbrief/pipeline"
	"gridbrief/sink"
	"gridbrief/sources"
	"gridbrief/types"
)

// RunOnce executes a single end-to-end cycle: fetch feeds, normalize,
// deduplicate, rank, write the dataset artifacts, then optional S3 upload and
// Kafka publish. It returns the ranked record set.
func RunOnce(ctx context.Context, cfg *config.Config) ([]types.Record, error) {
	log.SetOutput(os.Stderr)
	log.Println("=== Gridbrief Collector ===")

	registry := sources.Registry
	if cfg.SourcesFile != "" {
		loaded, err := sources.Load(cfg.SourcesFile)
		if err != nil {
			log.Printf("Warning: failed to load sources file %s: %v (using built-in registry)", cfg.SourcesFile, err)
		} else {
			registry = loaded
		}
	}

	var bloom *dedup.RedisBloom
	if cfg.RedisAddr != "" {
		b, err := dedup.NewRedisBloom(dedup.BloomConfig{
			Addr: cfg.RedisAddr,
			Key:  cfg.BloomKey,
			TTL:  cfg.BloomTTL,
		})
		if err != nil {
			log.Printf("Warning: failed to init bloom filter: %v (cross-run dedup disabled)", err)
		} else {
			bloom = b
			defer bloom.Close()
		}
	}

	p := pipeline.New(pipeline.Config{
		Source:     feeds.NewFeedFetcher(),
		Normalizer: normalize.New(normalize.Config{OfficialSources: sources.DefaultOfficial}),
		MaxPerFeed: cfg.MaxPerFeed,
		Bloom:      bloom,
	})

	records := p.Run(registry)
	log.Printf("Collected %d records from %d sources", len(records), len(registry))

	if err := sink.WriteCSV(cfg.CSVPath, records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	if err := sink.WriteJSON(cfg.JSONPath, records); err != nil {
		return nil, fmt.Errorf("failed to write json: %w", err)
	}
	log.Printf("Wrote %s and %s", cfg.CSVPath, cfg.JSONPath)

	uploadArtifacts(ctx, cfg)
	publishRecords(cfg, records)

	log.Println("=== Collector Run Complete ===")
	return records, nil
}

// uploadArtifacts pushes the dataset files to S3 if a bucket is configured.
// Upload failures are logged, never fatal.
func uploadArtifacts(ctx context.Context, cfg *config.Config) {
	if cfg.S3Bucket == "" {
		log.Printf("S3 not configured; skipping uploads")
		return
	}

	client, err := common.NewS3(ctx, common.S3Config{Region: cfg.S3Region})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (uploads disabled)", err)
		return
	}
	uploader := sink.NewS3Uploader(client, cfg.S3Bucket, cfg.S3Prefix)

	artifacts := []struct {
		path, name, contentType string
	}{
		{cfg.CSVPath, "dataset.csv", "text/csv"},
		{cfg.JSONPath, "dataset.json", "application/json"},
	}
	for _, a := range artifacts {
		uctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := uploader.Upload(uctx, a.path, a.name, a.contentType)
		cancel()
		if err != nil {
			log.Printf("S3 upload failed for %s: %v", a.name, err)
			continue
		}
		log.Printf("Uploaded %s to s3://%s", a.name, cfg.S3Bucket)
	}
}

// publishRecords sends the ranked set to Kafka if brokers are configured.
// Publish failures are logged, never fatal.
func publishRecords(cfg *config.Config, records []types.Record) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Printf("Kafka not configured; skipping publish")
		return
	}

	publisher, err := sink.NewKafkaPublisher(sink.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	if err != nil {
		log.Printf("Warning: failed to init kafka publisher: %v (publish disabled)", err)
		return
	}
	defer publisher.Close()

	if err := publisher.Publish(records); err != nil {
		log.Printf("Warning: kafka publish incomplete: %v", err)
		return
	}
	log.Printf("Published %d records to topic %s", len(records), cfg.KafkaTopic)
}
