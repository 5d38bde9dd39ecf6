package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/MRehmanR/resume-builder/internal/config"
	"github.com/MRehmanR/resume-builder/internal/handler"
	"github.com/MRehmanR/resume-builder/internal/middleware"
	"github.com/MRehmanR/resume-builder/internal/service"
	"github.com/MRehmanR/resume-builder/internal/store"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	backend := service.NewBackendClient(cfg.BackendURL)
	sessionStore := store.New()
	sessions := service.NewSessionController(backend, sessionStore)
	previews := service.NewPreviewService(backend)
	postings := service.NewJobPostingFetcher()

	// Handler pointer for use in the default handler closure
	var h *handler.Handler

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.AllowList(cfg),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleMessage(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	// Warm the session cache; the backend is the source of truth, so a
	// failure here only means an empty cache until the next refresh.
	if err := sessions.Refresh(ctx); err != nil {
		slog.Warn("initial session refresh failed", "error", err)
	}

	h = handler.New(handler.Deps{
		Bot:      b,
		Cfg:      cfg,
		Sessions: sessions,
		Previews: previews,
		Backend:  backend,
		Postings: postings,
	})
	h.Register()

	slog.Info("starting bot", "username", me.Username, "id", me.ID, "backend", cfg.BackendURL)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
