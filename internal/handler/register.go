package handler

import (
	"github.com/go-telegram/bot"
)

// Register wires all command and callback handlers.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/sessions", bot.MatchTypePrefix, h.handleSessions)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/new", bot.MatchTypePrefix, h.handleNewSessionCommand)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/preview", bot.MatchTypePrefix, h.handlePreview)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/export", bot.MatchTypePrefix, h.handleExport)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/edit", bot.MatchTypePrefix, h.handleEditSection)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/ats", bot.MatchTypePrefix, h.handleATSScore)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/gaps", bot.MatchTypePrefix, h.handleGapDetection)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tailor", bot.MatchTypePrefix, h.handleTailor)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/share", bot.MatchTypePrefix, h.handleShare)

	// Session picker callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "switch_", bot.MatchTypePrefix, h.handleSwitchSession)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "del_", bot.MatchTypePrefix, h.handleDeleteSession)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "new_session", bot.MatchTypePrefix, h.handleNewSessionCallback)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "sessions_page_", bot.MatchTypePrefix, h.handleSessionsPage)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "cur", bot.MatchTypeExact, h.handleNoop)

	// Preview format switch callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "fmt_", bot.MatchTypePrefix, h.handleFormatSwitch)
}
