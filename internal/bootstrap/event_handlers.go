package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Ascendant_Go/internal/config"
	"github.com/osse101/Ascendant_Go/internal/event"
	"github.com/osse101/Ascendant_Go/internal/metrics"
	"github.com/osse101/Ascendant_Go/internal/notify"
	"github.com/osse101/Ascendant_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Config   *config.Config
}

// RegisterEventHandlers subscribes every notification consumer to the bus:
// the metrics collector, the log notifier, the SSE fan-out and, when
// configured, the Discord webhook notifier. The Discord notifier is returned
// so the caller can shut it down; it is nil when disabled.
func RegisterEventHandlers(deps EventHandlerDependencies) (*notify.DiscordNotifier, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	notify.NewLogNotifier().Register(deps.EventBus)
	slog.Info(LogMsgLogNotifierRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if !deps.Config.DiscordEnabled() {
		slog.Info(LogMsgDiscordNotifierDisabled)
		return nil, nil
	}
	discord, err := notify.NewDiscordNotifier(deps.Config.DiscordWebhookID, deps.Config.DiscordWebhookToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscord, err)
	}
	discord.Register(deps.EventBus)
	slog.Info(LogMsgDiscordNotifierRegistered)

	return discord, nil
}
