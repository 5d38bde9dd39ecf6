package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/MRehmanR/resume-builder/internal/config"
)

// AllowList returns middleware that drops updates from chats outside the
// configured allow-list. The backend keeps one global session list, so the
// bot is meant for a single owner.
func AllowList(cfg *config.Config) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			chatID := updateChatID(update)
			if chatID != 0 && !cfg.IsAllowed(chatID) {
				slog.Warn("update from disallowed chat dropped", "chat_id", chatID)
				return
			}
			next(ctx, b, update)
		}
	}
}

func updateChatID(update *models.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil {
		return update.CallbackQuery.Message.Message.Chat.ID
	}
	return 0
}
