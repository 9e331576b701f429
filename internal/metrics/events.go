package metrics

import (
	"context"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/event"
	"github.com/osse101/Ascendant_Go/internal/logger"
)

// EventMetricsCollector subscribes to notifications and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every notification type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes one notification and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	n, err := event.NotificationFrom(evt)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	switch n.Type {
	case domain.NotificationExpAwarded:
		if n.Amount > 0 {
			ExpAwarded.Add(float64(n.Amount))
		}
	case domain.NotificationItemMissed:
		ItemsMissed.WithLabelValues(string(n.ItemKind)).Inc()
	case domain.NotificationLevelUp:
		levels := n.Amount
		if levels < 1 {
			levels = 1
		}
		LevelChanges.WithLabelValues(DirectionUp).Add(float64(levels))
	case domain.NotificationLevelDown:
		LevelChanges.WithLabelValues(DirectionDown).Inc()
	case domain.NotificationCurseApplied:
		Penalties.WithLabelValues(PenaltyCurse).Inc()
	case domain.NotificationShadowFatigueApplied:
		Penalties.WithLabelValues(PenaltyShadowFatigue).Inc()
	case domain.NotificationSideQuestsLocked:
		Penalties.WithLabelValues(PenaltySideQuestLock).Inc()
	case domain.NotificationRedemptionStarted,
		domain.NotificationRedemptionSucceeded,
		domain.NotificationRedemptionFailed,
		domain.NotificationRedemptionAbandoned:
		Redemptions.WithLabelValues(string(n.Type)).Inc()
	case domain.NotificationQuotaRejected:
		QuotaRejections.WithLabelValues(string(n.ItemKind)).Inc()
	}

	return nil
}
