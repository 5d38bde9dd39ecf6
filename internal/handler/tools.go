package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/MRehmanR/resume-builder/internal/config"
	"github.com/MRehmanR/resume-builder/internal/service"
	tg "github.com/MRehmanR/resume-builder/internal/telegram"
)

// The domain tools all follow the same shape: take the current resume
// snapshot, run one backend tool against it, reply with the report.

func (h *Handler) handleATSScore(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	jd := commandArg(update.Message.Text)
	if jd == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Usage: /ats <job description>",
		})
		return
	}
	h.runTool(ctx, b, update.Message.Chat.ID, service.ToolATSScore, map[string]string{"job_description": jd})
}

func (h *Handler) handleGapDetection(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.runTool(ctx, b, update.Message.Chat.ID, service.ToolGapDetection, nil)
}

func (h *Handler) handleTailor(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	arg := commandArg(update.Message.Text)
	if arg == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Usage: /tailor <job description or URL>",
		})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, config.FetchTimeout)
	jd, err := h.postings.Resolve(reqCtx, arg)
	cancel()
	if err != nil {
		slog.Error("resolve job posting", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not fetch that job posting.",
		})
		return
	}

	h.runTool(ctx, b, chatID, service.ToolJDParser, map[string]string{"job_description": jd})
}

func (h *Handler) handleShare(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	name := commandArg(update.Message.Text)
	if name == "" {
		name = "Untitled Resume"
	}
	h.runTool(ctx, b, update.Message.Chat.ID, service.ToolShare, map[string]string{"resume_name": name})
}

// handleEditSection replaces one section's content server-side:
// /edit skills Go, Python, SQL
func (h *Handler) handleEditSection(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	args := strings.SplitN(commandArg(update.Message.Text), " ", 2)
	if len(args) < 2 || args[0] == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Usage: /edit <section> <content>",
		})
		return
	}
	section, content := strings.ToLower(args[0]), strings.TrimSpace(args[1])

	sessionID, ok := h.sessions.Store().ActiveID()
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ No active session — start from chat first.",
		})
		return
	}

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	result, err := h.backend.UpdateSection(reqCtx, sessionID, section, content)
	if err != nil {
		slog.Error("update section", "error", err, "section", section)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not update that section.",
		})
		return
	}
	if err := tg.SendLongMessage(ctx, b, chatID, result); err != nil {
		slog.Error("deliver edit result", "error", err)
	}
}

// runTool fetches the current snapshot, invokes one domain tool with it and
// replies with the report.
func (h *Handler) runTool(ctx context.Context, b *bot.Bot, chatID int64, tool string, extra map[string]string) {
	sessionID, ok := h.sessions.Store().ActiveID()
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ No active session — build a resume in chat first.",
		})
		return
	}

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	snapshot, err := h.previews.Snapshot(reqCtx, sessionID)
	if err != nil {
		slog.Error("fetch snapshot for tool", "error", err, "tool", tool)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not load the current resume.",
		})
		return
	}

	payload := map[string]string{"session_id": sessionID, "resume_text": snapshot}
	for k, v := range extra {
		payload[k] = v
	}

	result, err := h.backend.RunTool(reqCtx, tool, payload)
	if err != nil {
		slog.Error("run tool", "error", err, "tool", tool)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ The " + tool + " tool failed. Please try again.",
		})
		return
	}
	if err := tg.SendLongMessage(ctx, b, chatID, result); err != nil {
		slog.Error("deliver tool result", "error", err)
	}
}
