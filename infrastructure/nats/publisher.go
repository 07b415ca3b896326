package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"tasklist-api/domain/ports"
	"tasklist-api/pkg/logger"
)

// EventPublisher publishes entity lifecycle events to JetStream.
type EventPublisher struct {
	client *Client
}

func NewEventPublisher(client *Client) ports.EventPublisherPort {
	return &EventPublisher{client: client}
}

// Publish ส่ง event ไปยัง subject ตาม type (เช่น tasklist.events.task.created)
func (p *EventPublisher) Publish(ctx context.Context, event *ports.EntityEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := SubjectPrefix + event.Type
	ack, err := p.client.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugContext(ctx, "Event published",
		"subject", subject,
		"entity_id", event.EntityID,
		"sequence", ack.Sequence,
	)

	return nil
}
