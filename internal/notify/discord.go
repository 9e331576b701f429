package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/event"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/worker"
)

// WebhookExecutor is the part of *discordgo.Session the notifier needs
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// discordTypes are the notifications worth a message. EXP, streak and daily
// win updates are too frequent for a channel.
var discordTypes = []domain.NotificationType{
	domain.NotificationLevelUp,
	domain.NotificationLevelDown,
	domain.NotificationRankUp,
	domain.NotificationItemMissed,
	domain.NotificationCurseApplied,
	domain.NotificationCurseLifted,
	domain.NotificationShadowFatigueApplied,
	domain.NotificationSideQuestsLocked,
	domain.NotificationSideQuestsUnlocked,
	domain.NotificationRedemptionStarted,
	domain.NotificationRedemptionSucceeded,
	domain.NotificationRedemptionFailed,
	domain.NotificationRedemptionAbandoned,
	domain.NotificationWeeklyReset,
}

// DiscordNotifier posts notifications to a Discord webhook.
// Delivery runs on its own single worker so bus publishers never wait on Discord.
type DiscordNotifier struct {
	exec      WebhookExecutor
	webhookID string
	token     string
	pool      *worker.Pool
}

// NewDiscordNotifier creates a notifier backed by a token-less discordgo session.
// Webhook execution is authorized by the webhook token alone.
func NewDiscordNotifier(webhookID, token string) (*DiscordNotifier, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	return NewDiscordNotifierWithExecutor(session, webhookID, token)
}

// NewDiscordNotifierWithExecutor creates a notifier over any executor
func NewDiscordNotifierWithExecutor(exec WebhookExecutor, webhookID, token string) (*DiscordNotifier, error) {
	if webhookID == "" || token == "" {
		return nil, errors.New(ErrMsgWebhookNotConfigured)
	}
	pool := worker.NewPool(1, DefaultQueueSize)
	pool.Start()
	return &DiscordNotifier{
		exec:      exec,
		webhookID: webhookID,
		token:     token,
		pool:      pool,
	}, nil
}

// Register subscribes to the notification types that are posted to Discord
func (d *DiscordNotifier) Register(bus event.Bus) {
	for _, t := range discordTypes {
		bus.Subscribe(event.Type(t), d.HandleEvent)
	}
	logger.FromContext(context.Background()).Info(LogMsgDiscordRegistered, "types", len(discordTypes))
}

// HandleEvent queues one notification for delivery
func (d *DiscordNotifier) HandleEvent(ctx context.Context, evt event.Event) error {
	n, err := event.NotificationFrom(evt)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	err = d.pool.Enqueue(worker.JobFunc(func(jobCtx context.Context) error {
		return d.Send(jobCtx, n)
	}))
	if errors.Is(err, worker.ErrPoolStopped) {
		logger.FromContext(ctx).Warn(LogMsgWebhookQueueStopped, "type", n.Type)
		return nil
	}
	return err
}

// Send posts n immediately
func (d *DiscordNotifier) Send(ctx context.Context, n domain.Notification) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{d.BuildEmbed(n)},
	}
	if _, err := d.exec.WebhookExecute(d.webhookID, d.token, false, params); err != nil {
		logger.FromContext(ctx).Error(LogMsgWebhookFailed, "type", n.Type, "error", err)
		return fmt.Errorf("discord webhook: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgWebhookSent, "type", n.Type)
	return nil
}

// Shutdown delivers whatever is queued and stops the worker
func (d *DiscordNotifier) Shutdown() {
	d.pool.Stop()
}

// BuildEmbed renders n as a Discord embed
func (d *DiscordNotifier) BuildEmbed(n domain.Notification) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       d.titleFor(n.Type),
		Description: n.Message,
		Color:       colorFor(n.Type),
		Footer: &discordgo.MessageEmbedFooter{
			Text: EmbedFooter,
		},
	}
	if !n.At.IsZero() {
		embed.Timestamp = n.At.Format(time.RFC3339)
	}

	if n.Level > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Level",
			Value:  fmt.Sprintf("%d", n.Level),
			Inline: true,
		})
	}
	if n.Rank != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Rank",
			Value:  string(n.Rank),
			Inline: true,
		})
	}
	if n.Category != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Category",
			Value:  titleCase(string(n.Category)),
			Inline: true,
		})
	}
	if n.ItemKind != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Item",
			Value:  titleCase(string(n.ItemKind)),
			Inline: true,
		})
	}
	if n.Until != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Until",
			Value:  n.Until.Format("Mon Jan 2 15:04"),
			Inline: true,
		})
	}
	return embed
}

// titleFor turns "shadow_fatigue.applied" into "Shadow Fatigue Applied"
func (d *DiscordNotifier) titleFor(t domain.NotificationType) string {
	words := strings.NewReplacer(".", " ", "_", " ").Replace(string(t))
	return titleCase(words)
}

func colorFor(t domain.NotificationType) int {
	switch t {
	case domain.NotificationLevelUp, domain.NotificationRankUp:
		return ColorProgress
	case domain.NotificationLevelDown,
		domain.NotificationItemMissed,
		domain.NotificationCurseApplied,
		domain.NotificationShadowFatigueApplied,
		domain.NotificationSideQuestsLocked,
		domain.NotificationRedemptionFailed:
		return ColorPenalty
	case domain.NotificationCurseLifted,
		domain.NotificationSideQuestsUnlocked,
		domain.NotificationRedemptionSucceeded:
		return ColorRecovery
	case domain.NotificationRedemptionStarted, domain.NotificationRedemptionAbandoned:
		return ColorRedemption
	}
	return ColorInfo
}

// titleCase builds a fresh Caser each call since a Caser is not safe to share
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
