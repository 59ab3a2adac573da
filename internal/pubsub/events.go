// Package pubsub provides a generic publish/subscribe event system used to
// announce registry mutations to host subscribers.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// MintedEvent announces that an asset was created.
	MintedEvent EventType = "minted"
	// BurnedEvent announces that an asset was destroyed.
	BurnedEvent EventType = "burned"
	// TransferredEvent announces that an asset changed owner.
	TransferredEvent EventType = "transferred"
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
