package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/blogem/timesheet-tracker/models"
)

// messageWriter is the subset of *kafka.Writer used by KafkaPublisher
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes submitted entries to a Kafka topic, keyed by entry id
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates an asynchronous publisher; delivery failures are logged
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		BatchTimeout: 10 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Printf("Failed to deliver %d timesheet events: %v", len(messages), err)
			}
		},
	})
}

func newKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish enqueues the entry as a JSON message
func (p *KafkaPublisher) Publish(ctx context.Context, entry *models.TimesheetEntry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode timesheet event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(entry.ID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("timesheet.submitted")},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish timesheet event: %w", err)
	}

	return nil
}

// Close flushes pending messages and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
