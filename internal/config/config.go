package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken   string `env:"BOT_TOKEN,required"`
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:8000"`

	// Access: when set, only these Telegram chat ids may use the bot. The
	// backend has no user partitioning, so the bot is single-tenant.
	AllowedChatIDs []int64 `env:"ALLOWED_CHAT_IDS" envSeparator:","`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// IsAllowed reports whether a chat may use the bot. An empty allow-list
// permits everyone.
func (c *Config) IsAllowed(chatID int64) bool {
	if len(c.AllowedChatIDs) == 0 {
		return true
	}
	for _, id := range c.AllowedChatIDs {
		if id == chatID {
			return true
		}
	}
	return false
}
