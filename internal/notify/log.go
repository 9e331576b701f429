// Package notify delivers engine notifications to people: the process log and
// an optional Discord webhook.
package notify

import (
	"context"
	"log/slog"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/event"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// LogNotifier writes every notification to the structured log
type LogNotifier struct{}

// NewLogNotifier creates a log notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Register subscribes to every notification type
func (l *LogNotifier) Register(bus event.Bus) {
	event.SubscribeAll(bus, l.HandleEvent)
}

// HandleEvent logs one notification. Penalties are logged at warn level.
func (l *LogNotifier) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	n, err := event.NotificationFrom(evt)
	if err != nil {
		log.Warn(LogMsgPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	attrs := []any{"type", n.Type, "message", n.Message}
	if v := evt.GetMetadataValue(event.MetadataStateVersion); v != nil {
		attrs = append(attrs, "state_version", v)
	}
	if n.ItemID != "" {
		attrs = append(attrs, "item_kind", n.ItemKind, "item_id", n.ItemID)
	}
	if n.Amount != 0 {
		attrs = append(attrs, "amount", n.Amount)
	}

	log.Log(ctx, levelFor(n.Type), LogMsgNotification, attrs...)
	return nil
}

func levelFor(t domain.NotificationType) slog.Level {
	switch t {
	case domain.NotificationCurseApplied,
		domain.NotificationShadowFatigueApplied,
		domain.NotificationSideQuestsLocked,
		domain.NotificationItemMissed,
		domain.NotificationLevelDown,
		domain.NotificationRedemptionFailed,
		domain.NotificationQuotaRejected:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
