// Package pubsub provides a generic publish/subscribe event system.
package pubsub

import (
	"context"
	"time"
)

// EventType labels what happened to the payload.
type EventType string

const (
	// ActivatedEvent marks a theme activation, payload carries the details.
	ActivatedEvent EventType = "activated"
	// ReloadedEvent marks a configuration reload from disk.
	ReloadedEvent EventType = "reloaded"
	// CreatedEvent is the generic "something new exists" event, used by the
	// log stream among others.
	CreatedEvent EventType = "created"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

// ThemeChange is the payload published when the active theme changes.
type ThemeChange struct {
	Theme        string
	ActivationID string
}
