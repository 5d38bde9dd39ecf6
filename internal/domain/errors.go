package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptySession    = errors.New("current session is empty")
	ErrStalePreview    = errors.New("stale preview response")
	ErrEmptyReply      = errors.New("backend returned no reply")
)
