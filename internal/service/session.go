// Package service holds the client-side orchestration: the session
// controller state machine, the preview pipeline, the backend HTTP client
// and the job-posting fetcher.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MRehmanR/resume-builder/internal/domain"
	"github.com/MRehmanR/resume-builder/internal/store"
)

// SessionController drives the session lifecycle against the backend. It is
// a two-state machine: either no session is active, or exactly one is. All
// transcript state lives in the store; the controller never keeps a second
// copy that could diverge.
type SessionController struct {
	backend *BackendClient
	store   *store.SessionStore

	// createMu serializes session creation so concurrent first messages
	// cannot each create a backend session.
	createMu sync.Mutex
}

func NewSessionController(backend *BackendClient, st *store.SessionStore) *SessionController {
	return &SessionController{backend: backend, store: st}
}

// Store exposes the session cache for read-side consumers (handlers).
func (c *SessionController) Store() *store.SessionStore {
	return c.store
}

// Refresh replaces the whole cache with the backend's authoritative session
// list. When nothing is active and sessions exist, the newest one becomes
// active, matching the load-on-startup behavior of the chat view.
func (c *SessionController) Refresh(ctx context.Context) error {
	sessions, err := c.backend.ListChats(ctx)
	if err != nil {
		return fmt.Errorf("refresh sessions: %w", err)
	}
	c.store.ReplaceAll(sessions)
	if _, ok := c.store.ActiveID(); !ok {
		if latest, ok := c.store.MostRecent(); ok {
			c.store.SetActive(latest.ID)
		}
	}
	return nil
}

// EnsureActive returns the active session id, creating and activating a
// fresh backend session only when none is active. Repeated calls while a
// session is active are no-ops.
func (c *SessionController) EnsureActive(ctx context.Context) (string, error) {
	if id, ok := c.store.ActiveID(); ok {
		return id, nil
	}
	c.createMu.Lock()
	defer c.createMu.Unlock()
	// Another handler may have created one while we waited for the lock.
	if id, ok := c.store.ActiveID(); ok {
		return id, nil
	}
	return c.createAndActivate(ctx)
}

// NewSession creates and activates a fresh session regardless of the current
// state, except that it refuses while the active session's transcript is
// still empty. The refusal is a guard against empty-session proliferation
// and is reported as domain.ErrEmptySession, a non-fatal notice.
func (c *SessionController) NewSession(ctx context.Context) (string, error) {
	c.createMu.Lock()
	defer c.createMu.Unlock()
	if id, ok := c.store.ActiveID(); ok {
		if sess, ok := c.store.Get(id); ok && sess.IsEmpty() {
			return "", domain.ErrEmptySession
		}
	}
	return c.createAndActivate(ctx)
}

func (c *SessionController) createAndActivate(ctx context.Context) (string, error) {
	sess, err := c.backend.CreateChat(ctx)
	if err != nil {
		return "", fmt.Errorf("new session: %w", err)
	}
	c.store.Add(sess)
	c.store.SetActive(sess.ID)
	slog.Info("session created", "session_id", sess.ID, "chat_id", sess.ChatID)
	return sess.ID, nil
}

// SendMessage runs one chat turn. The author message is appended to the
// local transcript before the request is issued, so it is visible
// immediately and is never rolled back. The backend reply is appended as an
// assistant message on success, or a system notice describing the failure;
// either way the appended message is returned. If the session was deleted
// while the request was in flight, the response is silently discarded and
// domain.ErrSessionNotFound is returned.
func (c *SessionController) SendMessage(ctx context.Context, text string) (domain.Message, error) {
	sessionID, err := c.EnsureActive(ctx)
	if err != nil {
		return domain.Message{}, err
	}

	c.store.Append(sessionID, domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleAuthor,
		Content:   text,
		CreatedAt: time.Now(),
	})

	reply, chatErr := c.backend.Chat(ctx, sessionID, text)

	if !c.store.Has(sessionID) {
		// Deleted mid-flight; the target transcript no longer exists.
		slog.Debug("discarding reply for deleted session", "session_id", sessionID)
		return domain.Message{}, domain.ErrSessionNotFound
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	if chatErr != nil {
		msg.Role = domain.RoleSystemNotice
		msg.Content = "Could not reach the resume agent: " + chatErr.Error()
		c.store.Append(sessionID, msg)
		return msg, fmt.Errorf("send message: %w", chatErr)
	}
	msg.Role = domain.RoleAssistant
	msg.Content = reply
	c.store.Append(sessionID, msg)
	return msg, nil
}

// SelectSession fetches the authoritative transcript for id, replaces the
// cached copy and activates it. A stale local transcript is never shown
// after selection.
func (c *SessionController) SelectSession(ctx context.Context, id string) (domain.ChatSession, error) {
	sess, err := c.backend.GetChat(ctx, id)
	if err != nil {
		return domain.ChatSession{}, fmt.Errorf("select session: %w", err)
	}
	c.store.Replace(sess)
	c.store.SetActive(sess.ID)
	return sess, nil
}

// DeleteSession removes a session from the backend and the cache. When the
// active session is deleted, the most recently created survivor is selected
// (with a fresh transcript fetch); with no survivors the controller returns
// to the no-active-session state.
func (c *SessionController) DeleteSession(ctx context.Context, id string) error {
	wasActive := false
	if activeID, ok := c.store.ActiveID(); ok {
		wasActive = activeID == id
	}

	if err := c.backend.DeleteChat(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	c.store.Remove(id)

	if !wasActive {
		return nil
	}
	latest, ok := c.store.MostRecent()
	if !ok {
		c.store.ClearActive()
		return nil
	}
	if _, err := c.SelectSession(ctx, latest.ID); err != nil {
		return fmt.Errorf("activate remaining session: %w", err)
	}
	return nil
}

// UploadAttachment pushes a file into the active session. An "uploading"
// notice lands in the transcript first; on success an attachment notice is
// appended and the session is re-selected so any backend side effects (for
// example resume content derived from the file) become visible. On failure
// the error is reported without touching the transcript again.
func (c *SessionController) UploadAttachment(ctx context.Context, filename string, data []byte) error {
	sessionID, err := c.EnsureActive(ctx)
	if err != nil {
		return err
	}

	c.store.Append(sessionID, domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleSystemNotice,
		Content:   fmt.Sprintf("Uploading resume: %s...", filename),
		CreatedAt: time.Now(),
	})

	if err := c.backend.Upload(ctx, sessionID, filename, data); err != nil {
		return fmt.Errorf("upload attachment: %w", err)
	}

	c.store.Append(sessionID, domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleSystemNotice,
		Content:   fmt.Sprintf("[Attachment] %s", filename),
		CreatedAt: time.Now(),
	})

	if _, err := c.SelectSession(ctx, sessionID); err != nil {
		return fmt.Errorf("refresh after upload: %w", err)
	}
	return nil
}
