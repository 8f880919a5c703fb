// Package events emits content lifecycle notifications to Kafka so
// downstream consumers (cache invalidators, notification hooks) learn about
// edits without polling. Publishing is strictly best-effort: a broker
// outage must never block an editor save.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/kafka"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
)

const (
	EventContentLoaded  = "content.loaded"
	EventContentSaved   = "content.saved"
	EventBookingAdded   = "booking.added"
	EventBookingRemoved = "booking.removed"
)

type envelope struct {
	Event  string    `json:"event"`
	At     time.Time `json:"at"`
	Detail any       `json:"detail,omitempty"`
}

// Publisher wraps the producer with the content event vocabulary. A nil
// Publisher is a valid no-op, used when no brokers are configured.
type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewPublisher(producer *kafka.Producer, log *logger.Logger) *Publisher {
	return &Publisher{producer: producer, log: log}
}

// Publish serializes and sends one event. Failures are logged, never
// returned; callers treat event emission as fire-and-forget.
func (p *Publisher) Publish(ctx context.Context, event string, detail any) {
	if p == nil || p.producer == nil {
		return
	}

	value, err := json.Marshal(envelope{Event: event, At: time.Now().UTC(), Detail: detail})
	if err != nil {
		p.log.Error("Failed to serialize event", "event", event, "error", err)
		return
	}

	msg := kafka.Message{
		Key:       event,
		Value:     value,
		Timestamp: time.Now(),
	}
	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish event", "event", event, "error", err)
	}
}

func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
