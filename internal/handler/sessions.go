package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/MRehmanR/resume-builder/internal/config"
	"github.com/MRehmanR/resume-builder/internal/domain"
	tg "github.com/MRehmanR/resume-builder/internal/telegram"
)

func (h *Handler) handleSessions(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	// The cache may be cold (first command after startup); refresh from the
	// backend before showing anything.
	if err := h.sessions.Refresh(ctx); err != nil {
		slog.Error("refresh sessions", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not load sessions from the backend.",
		})
		return
	}
	h.sendSessionsPage(ctx, b, chatID, 0, false, 0)
}

func (h *Handler) sendSessionsPage(ctx context.Context, b *bot.Bot, chatID int64, page int, edit bool, messageID int) {
	sessions := h.sessions.Store().List()
	activeID, _ := h.sessions.Store().ActiveID()

	totalPages := int(math.Ceil(float64(len(sessions)) / float64(config.SessionsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * config.SessionsPerPage
	end := start + config.SessionsPerPage
	if end > len(sessions) {
		end = len(sessions)
	}

	var rows [][]models.InlineKeyboardButton
	for _, s := range sessions[start:end] {
		label := s.DisplayTitle()
		if s.ID == activeID {
			label += " ✅"
		}
		rows = append(rows, tg.ButtonRow(
			tg.InlineButton(label, "switch_"+s.ID),
			tg.InlineButton("🗑", "del_"+s.ID),
		))
	}
	rows = append(rows, tg.ButtonRow(tg.InlineButton("➕ New session", "new_session")))
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "sessions_page"))
	}

	text := fmt.Sprintf("💬 *Sessions* (%d)", len(sessions))
	if len(sessions) == 0 {
		text = "No sessions yet — start by typing a message."
	}
	keyboard := tg.InlineKeyboard(rows...)

	if edit && messageID != 0 {
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        text,
			ParseMode:   models.ParseModeMarkdownV1,
			ReplyMarkup: keyboard,
		})
	} else {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        text,
			ParseMode:   models.ParseModeMarkdownV1,
			ReplyMarkup: keyboard,
		})
	}
}

func (h *Handler) handleSessionsPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackOrigin(ctx, b, update)
	if !ok {
		return
	}
	page, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "sessions_page_"))
	if err != nil {
		return
	}
	h.sendSessionsPage(ctx, b, chatID, page, true, messageID)
}

func (h *Handler) handleSwitchSession(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackOrigin(ctx, b, update)
	if !ok {
		return
	}
	sessionID := strings.TrimPrefix(update.CallbackQuery.Data, "switch_")

	sess, err := h.sessions.SelectSession(ctx, sessionID)
	if err != nil {
		slog.Error("select session", "error", err, "session_id", sessionID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not load that session.",
		})
		return
	}

	h.sendSessionsPage(ctx, b, chatID, 0, true, messageID)
	if transcript := renderTranscript(&sess); transcript != "" {
		if err := tg.SendLongMessage(ctx, b, chatID, transcript); err != nil {
			slog.Error("send transcript", "error", err)
		}
	}
}

func (h *Handler) handleDeleteSession(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackOrigin(ctx, b, update)
	if !ok {
		return
	}
	sessionID := strings.TrimPrefix(update.CallbackQuery.Data, "del_")

	if err := h.sessions.DeleteSession(ctx, sessionID); err != nil {
		slog.Error("delete session", "error", err, "session_id", sessionID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not delete that session.",
		})
		return
	}
	h.sendSessionsPage(ctx, b, chatID, 0, true, messageID)
}

func (h *Handler) handleNewSessionCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.createSession(ctx, b, update.Message.Chat.ID)
}

func (h *Handler) handleNewSessionCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackOrigin(ctx, b, update)
	if !ok {
		return
	}
	if h.createSession(ctx, b, chatID) {
		h.sendSessionsPage(ctx, b, chatID, 0, true, messageID)
	}
}

func (h *Handler) createSession(ctx context.Context, b *bot.Bot, chatID int64) bool {
	_, err := h.sessions.NewSession(ctx)
	if errors.Is(err, domain.ErrEmptySession) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "ℹ️ Current session is empty — send a message first.",
		})
		return false
	}
	if err != nil {
		slog.Error("new session", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Could not create a session.",
		})
		return false
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✨ Fresh session started.",
	})
	return true
}

// renderTranscript formats a session transcript for display, newest last.
func renderTranscript(sess *domain.ChatSession) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n\n", sess.DisplayTitle()))
	for _, m := range sess.Messages {
		switch m.Role {
		case domain.RoleAuthor:
			sb.WriteString("🧑 ")
		case domain.RoleAssistant:
			sb.WriteString("🤖 ")
		default:
			sb.WriteString("ℹ️ ")
		}
		sb.WriteString(m.Content)
		sb.WriteString("\n\n")
	}
	if len(sess.Messages) == 0 {
		sb.WriteString("_(empty)_")
	}
	return strings.TrimSpace(sb.String())
}

// callbackOrigin answers the callback query and returns the chat and message
// it originated from.
func callbackOrigin(ctx context.Context, b *bot.Bot, update *models.Update) (int64, int, bool) {
	if update.CallbackQuery == nil {
		return 0, 0, false
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return 0, 0, false
	}
	return msg.Chat.ID, msg.ID, true
}
