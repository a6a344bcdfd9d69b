package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mapkeeper/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "mapkeeper-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	session := &storage.SessionData{
		UserID:       "u1",
		FullName:     "Ivan Petrov",
		Email:        "ivan@example.com",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}

	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestGetSession_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSaveSession_Replaces(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.SessionData{UserID: "u1", AccessToken: "a1"}))
	require.NoError(t, s.SaveSession(ctx, &storage.SessionData{UserID: "u1", AccessToken: "a2"}))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)
}

func TestDeleteSession(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.SessionData{UserID: "u1"}))
	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление идемпотентно
	assert.NoError(t, s.DeleteSession(ctx))
}
