package api

import "sync"

// TokenSource holds the bearer credentials shared by every outgoing
// request. The access token is read on each request and replaced only by
// the refresh flow; the mutex guarantees no stale-token window after a
// refresh completes.
type TokenSource struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

// NewTokenSource creates an empty (anonymous) token source.
func NewTokenSource() *TokenSource {
	return &TokenSource{}
}

// Access возвращает текущий access token ("" если не аутентифицированы)
func (t *TokenSource) Access() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.access
}

// Pair возвращает обе части credentials для персистенции
func (t *TokenSource) Pair() (access, refresh string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.access, t.refresh
}

// Set атомарно заменяет credentials
func (t *TokenSource) Set(access, refresh string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = access
	t.refresh = refresh
}

// Clear удаляет credentials (logout)
func (t *TokenSource) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = ""
	t.refresh = ""
}
