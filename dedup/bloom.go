package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gridbrief/types"
)

// BloomConfig configures the optional Redis-backed seen-records filter.
type BloomConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	Key      string // redis key for the bloom filter
	TTL      time.Duration
	// Capacity sets the initial BF.RESERVE capacity (number of items).
	Capacity int
	// ErrorRate sets the desired false positive probability (e.g. 0.001).
	ErrorRate float64
}

// RedisBloom suppresses records already emitted by a previous run, using
// RedisBloom commands over the record's (headline, source_url) hash. It is a
// probabilistic fast-path only; the in-memory Dedupe pass stays authoritative
// within a single run.
type RedisBloom struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisBloom creates the filter wrapper and verifies connectivity.
func NewRedisBloom(cfg BloomConfig) (*RedisBloom, error) {
	if cfg.Key == "" {
		cfg.Key = "records:bloom"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = 100000
	}
	if cfg.ErrorRate <= 0 {
		cfg.ErrorRate = 0.001
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	// Best-effort BF.RESERVE when the key does not exist yet. BF.ADD will
	// auto-create the filter if the reserve fails, so errors are ignored.
	exists, err := client.Exists(ctx, cfg.Key).Result()
	if err == nil && exists == 0 {
		client.Do(ctx, "BF.RESERVE", cfg.Key, fmt.Sprintf("%f", cfg.ErrorRate), cfg.Capacity)
	}

	return &RedisBloom{client: client, key: cfg.Key, ttl: cfg.TTL}, nil
}

// Seen reports whether the record's dedup key is probably in the filter.
func (r *RedisBloom) Seen(rec types.Record) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.client.Do(ctx, "BF.EXISTS", r.key, hashKey(rec)).Result()
	if err != nil {
		return false, err
	}

	switch v := res.(type) {
	case int64:
		return v == 1, nil
	case string:
		return v == "1", nil
	default:
		return false, fmt.Errorf("unexpected BF.EXISTS response type %T: %v", res, res)
	}
}

// Remember inserts the record's dedup key and refreshes the key TTL, so the
// filter stays alive for `ttl` after the most recent run.
func (r *RedisBloom) Remember(rec types.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Do(ctx, "BF.ADD", r.key, hashKey(rec)).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, r.key, r.ttl).Err()
}

// Close closes the underlying Redis client.
func (r *RedisBloom) Close() error {
	return r.client.Close()
}

// hashKey hashes the exact dedup pair; no normalization, matching Dedupe.
func hashKey(rec types.Record) string {
	h := sha256.Sum256([]byte(rec.Headline + "|" + rec.SourceURL))
	return hex.EncodeToString(h[:])
}
