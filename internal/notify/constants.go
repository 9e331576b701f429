package notify

// Embed colors
const (
	ColorProgress   = 0xFFD700 // Gold
	ColorPenalty    = 0xe74c3c // Red
	ColorRecovery   = 0x2ecc71 // Green
	ColorRedemption = 0x9b59b6 // Purple
	ColorInfo       = 0x3498db // Blue
)

const (
	// EmbedFooter is shown under every Discord embed
	EmbedFooter = "Ascendant"

	// DefaultQueueSize bounds the webhook delivery backlog
	DefaultQueueSize = 100
)

// Log messages
const (
	LogMsgNotification        = "Notification"
	LogMsgPayloadInvalid      = "Notification payload could not be decoded"
	LogMsgWebhookSent         = "Discord notification sent"
	LogMsgWebhookFailed       = "Failed to send Discord notification"
	LogMsgWebhookQueueStopped = "Discord notifier stopped, notification dropped"
	LogMsgDiscordRegistered   = "Discord notifier registered"
)

// Error messages
const (
	ErrMsgWebhookNotConfigured = "discord webhook id and token are required"
	ErrMsgCreateSession        = "failed to create discord session"
)
