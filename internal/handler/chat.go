package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/MRehmanR/resume-builder/internal/config"
	"github.com/MRehmanR/resume-builder/internal/domain"
	tg "github.com/MRehmanR/resume-builder/internal/telegram"
)

// HandleMessage is the default handler: documents go to the upload flow,
// plain text becomes a chat turn.
func (h *Handler) HandleMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	msg := update.Message

	if msg.Document != nil {
		h.handleDocument(ctx, b, update)
		return
	}
	if msg.Text == "" || strings.HasPrefix(msg.Text, "/") {
		return
	}
	h.handleChatTurn(ctx, b, msg.Chat.ID, msg.Text)
}

// handleChatTurn runs one send-message cycle. The author message is already
// on screen (the user typed it); the typing indicator runs only between
// issuing the request and its resolution.
func (h *Handler) handleChatTurn(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	reply, err := h.sessions.SendMessage(reqCtx, text)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			// Session deleted while the request was in flight; nothing to show.
			return
		}
		slog.Error("send message", "error", err)
	}
	if reply.Content == "" {
		if err != nil {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "⚠️ Could not reach the resume agent. Please try again.",
			})
		}
		return
	}

	text = reply.Content
	if reply.Role == domain.RoleSystemNotice {
		text = "⚠️ " + text
	}
	if err := tg.SendLongMessage(ctx, b, chatID, text); err != nil {
		slog.Error("deliver reply", "error", err)
	}
}
