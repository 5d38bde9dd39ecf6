package config

import "time"

const (
	// Backend request timeout (chat turns can take a while)
	RequestTimeout = 90 * time.Second

	// Job posting fetch timeout
	FetchTimeout = 30 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Sessions per page in the session picker
	SessionsPerPage = 5

	// Upload size cap for resume attachments (bytes)
	MaxUploadSize = 10 << 20
)
