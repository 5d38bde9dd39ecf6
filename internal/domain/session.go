package domain

import (
	"fmt"
	"time"
)

// Role identifies who produced a transcript message.
type Role string

const (
	RoleAuthor       Role = "author"
	RoleAssistant    Role = "assistant"
	RoleSystemNotice Role = "system-notice"
)

// Message is a single transcript entry. Messages are append-only: once added
// to a session they are never mutated or reordered, and append order is
// display order.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time // zero when the backend did not report one
}

// ChatSession mirrors one conversational session owned by the backend.
// ID is opaque and only ever assigned by the backend; ChatID is the numeric
// creation sequence used as display-order fallback.
type ChatSession struct {
	ID       string
	ChatID   int64
	Title    string
	Messages []Message
}

// DisplayTitle returns the backend-provided title or a numbered fallback.
func (s *ChatSession) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("Chat %d", s.ChatID)
}

// IsEmpty reports whether the session has no transcript yet.
func (s *ChatSession) IsEmpty() bool {
	return len(s.Messages) == 0
}
