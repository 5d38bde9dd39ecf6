package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const helpText = `📄 *Resume Builder*

Just type a message to talk to the resume agent — it builds your resume as you chat.

Commands:
/sessions — list, switch and delete chat sessions
/new — start a fresh session
/preview [format] — preview the resume (ats, modern, sidebar, creative, executive, europass)
/export [format] — receive the rendered resume as a file
/edit <section> <content> — replace one resume section
/ats <job description> — score the resume against a JD
/gaps — find gaps and weak sections
/tailor <job description or URL> — tailor the resume to a JD
/share <name> — save a shared resume version

Send a PDF or Word document to import an existing resume.`

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      "👋 Hi! I build resumes through conversation.\n\nTell me about yourself to get started, or send /help for all commands.",
		ParseMode: models.ParseModeMarkdownV1,
	})
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      helpText,
		ParseMode: models.ParseModeMarkdownV1,
	})
}

func (h *Handler) handleNoop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})
}
