package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock_test.go -package=events

// KafkaWriter defines the methods required to write messages to Kafka.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NewKafkaWriter creates a writer for the generation events topic.
// Messages are keyed by user so a user's events stay ordered within a partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher publishes generation events. A nil writer turns publishing into a no-op.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a publisher; writer may be nil.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishGeneration publishes a generation event. Failures are logged, never returned:
// the generation already succeeded and was paid for.
func (p *KafkaPublisher) PublishGeneration(ctx context.Context, ev models.GenerationEvent) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal generation event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish generation event to Kafka", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Generation event published to Kafka", "event_id", ev.EventID, "counter", ev.Counter, "amount", ev.Amount)
	}
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
