package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/IBM/sarama"
)

// Kicker requests an out-of-band snapshot refresh. Coalescing happens on the
// other side; Kick never blocks.
type Kicker interface {
	Kick()
}

// BookingEventsConsumer listens for booking lifecycle events and nudges the
// snapshot refresher. The dashboard does not apply events incrementally; any
// event just means the upstream data changed and a refetch is due.
type BookingEventsConsumer struct {
	group  sarama.ConsumerGroup
	kicker Kicker
	logger *slog.Logger
}

func NewBookingEventsConsumer(brokers []string, groupID string, cfg *sarama.Config, kicker Kicker, logger *slog.Logger) (*BookingEventsConsumer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Version = sarama.V2_5_0_0
	g, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}
	return &BookingEventsConsumer{group: g, kicker: kicker, logger: logger}, nil
}

func (c *BookingEventsConsumer) Run(ctx context.Context, topics []string) error {
	for {
		if err := c.group.Consume(ctx, topics, bookingEventsHandler{kicker: c.kicker, logger: c.logger}); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *BookingEventsConsumer) Close() error {
	return c.group.Close()
}

type bookingEvent struct {
	Type      string `json:"type"`
	BookingID string `json:"bookingId"`
}

type bookingEventsHandler struct {
	kicker Kicker
	logger *slog.Logger
}

func (h bookingEventsHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h bookingEventsHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h bookingEventsHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var event bookingEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			// Unknown payloads still signal change upstream.
			event = bookingEvent{Type: "unknown"}
		}
		if h.logger != nil {
			h.logger.Debug("booking event received",
				"type", event.Type,
				"booking_id", event.BookingID,
				"topic", message.Topic,
				"partition", message.Partition,
				"offset", message.Offset)
		}
		if h.kicker != nil {
			h.kicker.Kick()
		}
		sess.MarkMessage(message, "")
	}
	return nil
}
