// Package events publishes resource lifecycle events after changes are committed.
package events

import (
	"context"
	"time"

	"imaut/internal/core/id"
)

// Action names used in routing keys: "<resource>.<action>".
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is the JSON body of a published message.
type Event struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         id.ID     `json:"id"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data,omitempty"`
}

// RoutingKey returns "<resource>.<action>".
func (e Event) RoutingKey() string {
	return e.Resource + "." + e.Action
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
