// Package messaging publishes domain events to Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/coverbank/underwriting-service/internal/domain/event"
	"github.com/coverbank/underwriting-service/pkg/kafka"
)

// Topic carrying all underwriting application lifecycle events.
const applicationEventsTopic = "underwriting.application.events"

// envelope is the wire format for a published domain event. The payload holds
// the event-specific fields; the envelope holds the shared identity fields.
type envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	TenantID      string          `json:"tenant_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// KafkaEventPublisher implements port.EventPublisher on top of a shared
// Kafka producer.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher writing to the application
// events topic.
func NewKafkaEventPublisher(producer *kafka.Producer, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer, logger: logger}
}

// Publish serializes and sends the given events. Messages are keyed by
// aggregate ID so events for one application stay ordered within a partition.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event payload %s: %w", evt.EventType(), err)
		}

		value, err := json.Marshal(envelope{
			EventID:       evt.EventID().String(),
			EventType:     evt.EventType(),
			AggregateID:   evt.AggregateID(),
			AggregateType: evt.AggregateType(),
			TenantID:      evt.TenantID(),
			OccurredAt:    evt.OccurredAt(),
			Payload:       payload,
		})
		if err != nil {
			return fmt.Errorf("marshal event envelope %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: value,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"tenant_id":  evt.TenantID(),
			},
		})
	}

	if err := p.producer.Publish(ctx, applicationEventsTopic, messages...); err != nil {
		return fmt.Errorf("publish to %s: %w", applicationEventsTopic, err)
	}

	for _, evt := range events {
		p.logger.Info("domain event published",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"tenant_id", evt.TenantID(),
		)
	}
	return nil
}
