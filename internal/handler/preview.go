package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/MRehmanR/resume-builder/internal/config"
	"github.com/MRehmanR/resume-builder/internal/domain"
	"github.com/MRehmanR/resume-builder/internal/render"
	tg "github.com/MRehmanR/resume-builder/internal/telegram"
)

func (h *Handler) handlePreview(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	format := render.ParseFormat(commandArg(update.Message.Text))

	sessionID, ok := h.sessions.Store().ActiveID()
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ No active session — start from chat or pick one with /sessions.",
		})
		return
	}

	placeholder, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "⏳ Rendering preview...",
	})
	if err != nil {
		slog.Error("send preview placeholder", "error", err)
		return
	}

	h.renderPreviewInto(ctx, b, chatID, placeholder.ID, sessionID, format)
}

func (h *Handler) handleFormatSwitch(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackOrigin(ctx, b, update)
	if !ok {
		return
	}
	format := render.ParseFormat(strings.TrimPrefix(update.CallbackQuery.Data, "fmt_"))

	sessionID, ok := h.sessions.Store().ActiveID()
	if !ok {
		return
	}
	h.renderPreviewInto(ctx, b, chatID, messageID, sessionID, format)
}

// renderPreviewInto fetches, renders and edits the preview message in place.
// Stale responses (a newer render started for the same chat) are dropped
// without touching the view.
func (h *Handler) renderPreviewInto(ctx context.Context, b *bot.Bot, chatID int64, messageID int, sessionID string, format render.Format) {
	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	text, err := h.previews.Render(reqCtx, chatID, sessionID, format)
	if err != nil {
		if errors.Is(err, domain.ErrStalePreview) {
			return
		}
		slog.Error("render preview", "error", err, "format", format)
		tg.EditLongMessage(ctx, b, chatID, messageID, "⚠️ Could not load resume preview.", nil)
		return
	}
	if text == "" {
		text = "(no resume content yet)"
	}

	if err := tg.EditLongMessage(ctx, b, chatID, messageID, text, formatKeyboard(format)); err != nil {
		slog.Error("update preview message", "error", err)
	}
}

func (h *Handler) handleExport(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	format := render.ParseFormat(commandArg(update.Message.Text))

	sessionID, ok := h.sessions.Store().ActiveID()
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ No active session — start from chat or pick one with /sessions.",
		})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	text, err := h.previews.Render(reqCtx, chatID, sessionID, format)
	if err != nil {
		if errors.Is(err, domain.ErrStalePreview) {
			return
		}
		slog.Error("export preview", "error", err, "format", format)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not export the resume.",
		})
		return
	}
	if text == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ No resume content yet — build one in chat first.",
		})
		return
	}

	filename := fmt.Sprintf("resume-%s.md", format)
	if err := tg.SendDocument(ctx, b, chatID, filename, []byte(text), "📄 "+string(format)+" layout"); err != nil {
		slog.Error("send export", "error", err)
	}
}

// formatKeyboard builds the layout picker, marking the current format.
func formatKeyboard(current render.Format) *models.InlineKeyboardMarkup {
	var row []models.InlineKeyboardButton
	var rows [][]models.InlineKeyboardButton
	for _, f := range render.Formats() {
		label := string(f)
		if f == current {
			label = "• " + label
		}
		row = append(row, tg.InlineButton(label, "fmt_"+string(f)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tg.InlineKeyboard(rows...)
}

// commandArg returns everything after the command word.
func commandArg(text string) string {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
