package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BookingEventConsumer tails the booking events topic and logs confirmed
// bookings, standing in for the notification pipeline of a real deployment.
type BookingEventConsumer struct {
	reader *kafkago.Reader
	logger *zap.Logger
}

// NewBookingEventConsumer creates a consumer in the given group.
func NewBookingEventConsumer(brokers []string, groupID string, logger *zap.Logger) *BookingEventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   TopicBookingEvents,
	})
	return &BookingEventConsumer{reader: reader, logger: logger}
}

// Start consumes events until the context is cancelled.
func (c *BookingEventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		c.handleMessage(msg)
	}
}

// Close closes the underlying Kafka reader.
func (c *BookingEventConsumer) Close() error {
	return c.reader.Close()
}

func (c *BookingEventConsumer) handleMessage(msg kafkago.Message) {
	var envelope Envelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		c.logger.Error("failed to parse event envelope",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return // don't retry malformed messages
	}

	switch envelope.Type {
	case BookingConfirmed:
		var evt BookingConfirmedEvent
		if err := envelope.ParseData(&evt); err != nil {
			c.logger.Error("failed to parse booking confirmed event", zap.Error(err))
			return
		}
		c.logger.Info("booking confirmed",
			zap.String("booking_id", evt.BookingID),
			zap.String("transaction_id", evt.TransactionID),
			zap.String("flight_id", evt.FlightID),
			zap.Int64("total_amount", evt.TotalAmount),
			zap.Int("passengers", evt.Passengers),
		)
	default:
		c.logger.Debug("ignoring unhandled event type",
			zap.String("type", envelope.Type),
		)
	}
}
