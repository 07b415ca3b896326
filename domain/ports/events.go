package ports

import "context"

// Entity lifecycle event types published on mutations.
const (
	EventListCreated = "list.created"
	EventListDeleted = "list.deleted"
	EventTaskCreated = "task.created"
	EventTaskUpdated = "task.updated"
	EventTaskDeleted = "task.deleted"
)

// EntityEvent - plain struct (ไม่มี NATS dependency)
type EntityEvent struct {
	Type     string `json:"type"`
	UserID   string `json:"userId"`
	EntityID string `json:"entityId"`
	ListID   string `json:"listId,omitempty"`
}

// EventPublisherPort publishes entity lifecycle events. Implementations must be
// fire-and-forget: a publish failure never fails the request that caused it.
type EventPublisherPort interface {
	Publish(ctx context.Context, event *EntityEvent) error
}
