// Package storage определяет интерфейсы локального кэша клиента.
package storage

import "context"

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines the local cache for the current session: token
// pair plus the last known profile, so a new process can resume without
// asking for credentials again.
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

// SessionData represents the cached session. Tokens are stored as
// received from the server; the profile copy is a convenience for the
// status command and may be stale until the next fetch.
type SessionData struct {
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
