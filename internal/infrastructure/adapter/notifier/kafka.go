package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/provider"
	"github.com/segmentio/kafka-go"
)

// broadcastKey partitions broadcasts apart from per-user events
const broadcastKey = "broadcast"

// MessageWriter is the producing side of a Kafka writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event is the JSON document published for every notification
type Event struct {
	Event         string    `json:"event"`
	UserID        uint64    `json:"user_id,omitempty"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	ReferenceCode string    `json:"reference_code,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// KafkaNotifier publishes notifications to a topic consumed by the push delivery service
type KafkaNotifier struct {
	writer MessageWriter
	topic  string
	clock  coreport.TimeProvider
	logger coreport.Logger
}

var _ provider.Notifier = (*KafkaNotifier)(nil)

// NewKafkaWriter builds a writer keyed by user so one user's events stay ordered
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
}

// NewKafkaNotifier creates a notifier on top of writer
func NewKafkaNotifier(writer MessageWriter, topic string, clock coreport.TimeProvider, logger coreport.Logger) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, topic: topic, clock: clock, logger: logger}
}

// Notify publishes one user-addressed event
func (k *KafkaNotifier) Notify(ctx context.Context, n provider.Notification) error {
	return k.publish(ctx, strconv.FormatUint(n.UserID, 10), Event{
		Event:         n.Event,
		UserID:        n.UserID,
		Title:         n.Title,
		Body:          n.Body,
		ReferenceCode: n.ReferenceCode,
		OccurredAt:    k.clock.Now(),
	})
}

// Broadcast publishes an event addressed to every user
func (k *KafkaNotifier) Broadcast(ctx context.Context, title, body string) error {
	return k.publish(ctx, broadcastKey, Event{
		Event:      provider.EventBroadcast,
		Title:      title,
		Body:       body,
		OccurredAt: k.clock.Now(),
	})
}

// Close flushes pending messages
func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}

func (k *KafkaNotifier) publish(ctx context.Context, key string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Event)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.Event, k.topic, err)
	}

	k.logger.Debug("Notification published", map[string]any{
		"topic":   k.topic,
		"event":   event.Event,
		"user_id": event.UserID,
	})
	return nil
}
