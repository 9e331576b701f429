package config

import "strings"

// Insecure example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	defaultDBPassword = "postgres"
)

// Warnings returns non-fatal issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StorageDriver == StoragePostgres {
		if c.DBPassword == exampleDBPassword || c.DBPassword == defaultDBPassword {
			warnings = append(warnings, "DB_PASSWORD appears to be a default or example value")
		}
	}

	if c.StorageDriver == StorageMemory && strings.EqualFold(c.Environment, "production") {
		warnings = append(warnings, "STORAGE_DRIVER=memory loses all progress on restart")
	}

	if c.DiscordWebhookID == "" && c.DiscordWebhookToken != "" {
		warnings = append(warnings, "DISCORD_WEBHOOK_TOKEN is set without DISCORD_WEBHOOK_ID; Discord notifications are disabled")
	}

	return warnings
}
