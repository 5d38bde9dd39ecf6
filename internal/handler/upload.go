package handler

import (
	"context"
	"log/slog"
	"path"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/MRehmanR/resume-builder/internal/config"
	tg "github.com/MRehmanR/resume-builder/internal/telegram"
)

// handleDocument imports an uploaded resume file into the active session.
func (h *Handler) handleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	chatID := msg.Chat.ID

	filename := msg.Document.FileName
	if filename == "" {
		filename = "resume"
	}
	switch path.Ext(filename) {
	case ".pdf", ".doc", ".docx", ".md", ".txt":
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ Please send a PDF, Word or text document.",
		})
		return
	}

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	data, _, err := tg.DownloadFile(ctx, b, msg.Document.FileID)
	if err != nil {
		slog.Error("download attachment", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not read the uploaded file.",
		})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	if err := h.sessions.UploadAttachment(reqCtx, filename, data); err != nil {
		slog.Error("upload attachment", "error", err, "filename", filename)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Upload failed: " + err.Error(),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ Resume uploaded! Use /preview to see it.",
	})
}
