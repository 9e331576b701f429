package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Metadata keys
const (
	MetadataStateVersion = "state_version"
	MetadataRequestID    = "request_id"
)

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// NotificationTypes lists every event type the engine emits
func NotificationTypes() []Type {
	out := make([]Type, 0, len(domain.AllNotificationTypes))
	for _, t := range domain.AllNotificationTypes {
		out = append(out, Type(t))
	}
	return out
}

// NewNotificationEvent wraps a domain notification for the bus
func NewNotificationEvent(n domain.Notification, stateVersion uint64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(n.Type),
		Payload: n,
		Metadata: Metadata{
			MetadataStateVersion: stateVersion,
		},
	}
}

// NotificationFrom recovers the notification carried by e
func NotificationFrom(e Event) (domain.Notification, error) {
	return DecodePayload[domain.Notification](e.Payload)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// SubscribeAll registers handler for every notification type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range NotificationTypes() {
		bus.Subscribe(t, handler)
	}
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
