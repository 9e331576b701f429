package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/Ascendant_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe forwards every engine notification to connected clients
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handleNotification)
	slog.Info(LogMsgSubscribed, "count", len(event.NotificationTypes()))
}

func (s *Subscriber) handleNotification(_ context.Context, evt event.Event) error {
	n, err := event.NotificationFrom(evt)
	if err != nil {
		slog.Warn("Invalid notification payload", "type", evt.Type, "error", err)
		return nil
	}

	var version uint64
	if v, ok := evt.GetMetadataValue(event.MetadataStateVersion).(uint64); ok {
		version = v
	}
	s.hub.Broadcast(string(evt.Type), version, n)
	return nil
}
