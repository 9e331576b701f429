package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/event"
)

func TestHub_FilteredBroadcast(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	curses := hub.Register([]string{string(domain.NotificationCurseApplied)})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(string(domain.NotificationLevelUp), 4, "up")
	hub.Broadcast(string(domain.NotificationCurseApplied), 5, "cursed")

	first := <-all.EventChannel
	assert.Equal(t, string(domain.NotificationLevelUp), first.Type)
	assert.Equal(t, uint64(4), first.StateVersion)
	second := <-all.EventChannel
	assert.Equal(t, string(domain.NotificationCurseApplied), second.Type)

	only := <-curses.EventChannel
	assert.Equal(t, "cursed", only.Payload)
	select {
	case e := <-curses.EventChannel:
		t.Fatalf("unexpected event %s", e.Type)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "level.up", Timestamp: 1})
	require.NoError(t, err)
	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: level.up\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestHandler_StreamsBusNotifications(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=level.up", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEvent())
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	n := domain.Notification{Type: domain.NotificationLevelUp, Level: 2, Message: "Level 2"}
	require.NoError(t, bus.Publish(ctx, event.NewNotificationEvent(n, 7)))

	assert.Equal(t, string(domain.NotificationLevelUp), readEvent())
}
