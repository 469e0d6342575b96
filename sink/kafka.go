package sink

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"gridbrief/types"
)

// KafkaConfig holds publisher configuration.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher emits one JSON message per record for downstream consumers.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher creates a synchronous producer for the given brokers.
func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaPublisher{producer: producer, topic: cfg.Topic}, nil
}

// Publish sends every record in rank order, keyed by its dedup pair so
// partitioning stays stable across runs.
func (p *KafkaPublisher) Publish(records []types.Record) error {
	for _, r := range records {
		value, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}

		msg := &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(r.Headline + "|" + r.SourceURL),
			Value: sarama.ByteEncoder(value),
		}
		if _, _, err := p.producer.SendMessage(msg); err != nil {
			return fmt.Errorf("failed to publish record %q: %w", r.Headline, err)
		}
	}
	return nil
}

// Close gracefully shuts down the producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
