// Package store keeps the client-side mirror of the backend's session list.
// It is a cache, never authoritative: anything here can be discarded and
// rebuilt from the backend. Telegram handlers run on separate goroutines, so
// every operation takes the store lock.
package store

import (
	"sync"

	"github.com/MRehmanR/resume-builder/internal/domain"
)

// SessionStore holds the ordered cached sessions and which one, if any, is
// active. It never fabricates session ids; ids only ever arrive from the
// backend. Optimistic local appends may exist that the backend has not
// acknowledged yet; a later Replace is authoritative and overwrites them.
type SessionStore struct {
	mu       sync.RWMutex
	sessions []*domain.ChatSession
	activeID string
}

func New() *SessionStore {
	return &SessionStore{}
}

// List returns a snapshot of the cached sessions in cache order. No network
// call is ever made here.
func (s *SessionStore) List() []domain.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChatSession, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = cloneSession(sess)
	}
	return out
}

// Get returns a copy of the session with the given id.
func (s *SessionStore) Get(id string) (domain.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.sessions {
		if sess.ID == id {
			return cloneSession(sess), true
		}
	}
	return domain.ChatSession{}, false
}

// Has reports whether a session with the given id is cached.
func (s *SessionStore) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Len returns the number of cached sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Add registers a backend-created session at the end of the cache order.
// Adding an id that already exists behaves like Replace.
func (s *SessionStore) Add(session domain.ChatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sess := range s.sessions {
		if sess.ID == session.ID {
			copied := cloneSession(&session)
			s.sessions[i] = &copied
			return
		}
	}
	copied := cloneSession(&session)
	s.sessions = append(s.sessions, &copied)
}

// Replace overwrites the cached transcript for session.ID with the
// authoritative value from a refresh. Local-only appends are dropped
// (last-refresh-wins). An unknown id is added instead.
func (s *SessionStore) Replace(session domain.ChatSession) {
	s.Add(session)
}

// ReplaceAll swaps the entire cache for the authoritative backend list. An
// active id that no longer exists is cleared.
func (s *SessionStore) ReplaceAll(sessions []domain.ChatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make([]*domain.ChatSession, len(sessions))
	for i := range sessions {
		copied := cloneSession(&sessions[i])
		s.sessions[i] = &copied
	}
	if s.activeID != "" && s.lockedGet(s.activeID) == nil {
		s.activeID = ""
	}
}

// Append adds a message to the cached transcript for sessionID. It is an
// optimistic local mutation: it always succeeds synchronously when the
// session exists, and reports false only when it does not.
func (s *SessionStore) Append(sessionID string, msg domain.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.lockedGet(sessionID)
	if sess == nil {
		return false
	}
	sess.Messages = append(sess.Messages, msg)
	return true
}

// Remove deletes a session from the cache. Removing the active session
// clears the active id.
func (s *SessionStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			break
		}
	}
	if s.activeID == id {
		s.activeID = ""
	}
}

// ActiveID returns the id of the active session, if any.
func (s *SessionStore) ActiveID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID, s.activeID != ""
}

// SetActive marks the given cached session as active.
func (s *SessionStore) SetActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lockedGet(id) == nil {
		return false
	}
	s.activeID = id
	return true
}

// ClearActive transitions to the no-active-session state.
func (s *SessionStore) ClearActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = ""
}

// MostRecent returns the session with the highest creation sequence, used to
// pick a new active session after a deletion.
func (s *SessionStore) MostRecent() (domain.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *domain.ChatSession
	for _, sess := range s.sessions {
		if best == nil || sess.ChatID > best.ChatID {
			best = sess
		}
	}
	if best == nil {
		return domain.ChatSession{}, false
	}
	return cloneSession(best), true
}

func (s *SessionStore) lockedGet(id string) *domain.ChatSession {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

func cloneSession(sess *domain.ChatSession) domain.ChatSession {
	copied := *sess
	copied.Messages = make([]domain.Message, len(sess.Messages))
	copy(copied.Messages, sess.Messages)
	return copied
}
