package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	assert.Error(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
}

func TestSubscribeAll_ReceivesEveryNotificationType(t *testing.T) {
	bus := NewMemoryBus()
	var seen atomic.Int32
	SubscribeAll(bus, func(ctx context.Context, e Event) error {
		seen.Add(1)
		return nil
	})

	for _, nt := range domain.AllNotificationTypes {
		n := domain.Notification{Type: nt, Message: string(nt), At: time.Now()}
		require.NoError(t, bus.Publish(context.Background(), NewNotificationEvent(n, 1)))
	}
	assert.Equal(t, int32(len(domain.AllNotificationTypes)), seen.Load())
}

func TestNotificationFrom(t *testing.T) {
	n := domain.Notification{Type: domain.NotificationLevelUp, Level: 4, Message: "Level 4 reached"}
	e := NewNotificationEvent(n, 9)

	got, err := NotificationFrom(e)
	require.NoError(t, err)
	assert.Equal(t, n, got)
	assert.Equal(t, uint64(9), e.GetMetadataValue(MetadataStateVersion))

	// Serialized payloads decode through the JSON fallback
	got, err = NotificationFrom(Event{Payload: map[string]interface{}{"type": "level.up", "level": 4}})
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationLevelUp, got.Type)
	assert.Equal(t, 4, got.Level)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
