package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	// TopicBookingEvents is the topic carrying booking lifecycle events.
	TopicBookingEvents = "booking.events"

	// BookingConfirmed is emitted after a booking submission succeeds.
	BookingConfirmed = "booking.confirmed"

	eventSource = "service-booking"
)

// Envelope is the CloudEvents-style wrapper every published event travels in.
type Envelope struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewEnvelope wraps an event payload in an envelope.
func NewEnvelope(eventType string, data interface{}) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return Envelope{
		ID:     uuid.NewString(),
		Source: eventSource,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   raw,
	}, nil
}

// ParseData unmarshals the envelope payload into v.
func (e Envelope) ParseData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// BookingConfirmedEvent is the payload of a booking.confirmed event.
type BookingConfirmedEvent struct {
	BookingID     string    `json:"booking_id"`
	TransactionID string    `json:"transaction_id"`
	FlightID      string    `json:"flight_id"`
	TotalAmount   int64     `json:"total_amount"`
	ContactEmail  string    `json:"contact_email"`
	Passengers    int       `json:"passengers"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Producer publishes envelopes to Kafka.
type Producer struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewProducer creates a producer connected to the given brokers.
func NewProducer(brokers []string, logger *zap.Logger) *Producer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &Producer{writer: writer, logger: logger}
}

// Publish wraps the payload in an envelope and writes it to the topic, keyed
// for per-booking ordering.
func (p *Producer) Publish(ctx context.Context, eventType, key string, data interface{}) error {
	envelope, err := NewEnvelope(eventType, data)
	if err != nil {
		return err
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	msg := kafkago.Message{
		Topic: TopicBookingEvents,
		Key:   []byte(key),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	p.logger.Debug("event published",
		zap.String("topic", TopicBookingEvents),
		zap.String("type", eventType),
		zap.String("key", key),
	)
	return nil
}

// Close closes the underlying Kafka writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
