package handler

import (
	"github.com/go-telegram/bot"

	"github.com/MRehmanR/resume-builder/internal/config"
	"github.com/MRehmanR/resume-builder/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	sessions *service.SessionController
	previews *service.PreviewService
	backend  *service.BackendClient
	postings *service.JobPostingFetcher
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Cfg      *config.Config
	Sessions *service.SessionController
	Previews *service.PreviewService
	Backend  *service.BackendClient
	Postings *service.JobPostingFetcher
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		cfg:      deps.Cfg,
		sessions: deps.Sessions,
		previews: deps.Previews,
		backend:  deps.Backend,
		postings: deps.Postings,
	}
}
