package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/mapkeeper/internal/client/api"
	"github.com/iudanet/mapkeeper/internal/client/iocli"
	"github.com/iudanet/mapkeeper/internal/client/layers"
	"github.com/iudanet/mapkeeper/internal/client/markers"
	"github.com/iudanet/mapkeeper/internal/client/session"
	"github.com/iudanet/mapkeeper/internal/client/storage"
	"github.com/iudanet/mapkeeper/internal/models"
	pkgapi "github.com/iudanet/mapkeeper/pkg/api"
)

// scriptedIO отдает заготовленные ответы на промпты и копит вывод
type scriptedIO struct {
	*iocli.IOMock
	out *strings.Builder
}

func newScriptedIO(inputs ...string) *scriptedIO {
	next := 0
	read := func(prompt string) (string, error) {
		if next >= len(inputs) {
			return "", fmt.Errorf("unexpected prompt: %s", prompt)
		}
		v := inputs[next]
		next++
		return v, nil
	}

	out := &strings.Builder{}
	return &scriptedIO{
		out: out,
		IOMock: &iocli.IOMock{
			PrintlnFunc: func(a ...any) {
				fmt.Fprintln(out, a...)
			},
			PrintfFunc: func(format string, a ...any) {
				fmt.Fprintf(out, format, a...)
			},
			ReadInputFunc:    read,
			ReadPasswordFunc: read,
		},
	}
}

func newTestCli(io iocli.IO, apiMock *clientapi.ClientAPIMock) *Cli {
	logger := slog.Default()
	cache := &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, session *storage.SessionData) error {
			return nil
		},
		GetSessionFunc: func(ctx context.Context) (*storage.SessionData, error) {
			return nil, storage.ErrSessionNotFound
		},
		DeleteSessionFunc: func(ctx context.Context) error { return nil },
	}

	sessionStore := session.NewStore(apiMock, cache, logger)
	layerStore := layers.NewStore(apiMock, logger)
	markerStore := markers.NewStore(apiMock, sessionStore, logger)
	return New(io, sessionStore, layerStore, markerStore)
}

func TestRun_UnknownCommand(t *testing.T) {
	c := newTestCli(newScriptedIO(), &clientapi.ClientAPIMock{})

	err := c.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRunStatus_NotAuthenticated(t *testing.T) {
	io := newScriptedIO()
	c := newTestCli(io, &clientapi.ClientAPIMock{})

	require.NoError(t, c.Run(context.Background(), "status", nil))
	assert.Contains(t, io.out.String(), "Not authenticated")
}

func TestRunLogin_Success(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, email, password string) (*pkgapi.AuthResponse, error) {
			return &pkgapi.AuthResponse{
				AccessToken:  "acc",
				RefreshToken: "ref",
				User:         models.User{ID: "u1", FullName: "Jane Doe", Email: email, IsActivated: true},
			}, nil
		},
		TokensFunc: func() *clientapi.TokenSource { return &clientapi.TokenSource{} },
	}

	io := newScriptedIO("jane@example.com", "secret-password")
	c := newTestCli(io, apiMock)

	require.NoError(t, c.Run(context.Background(), "login", nil))

	assert.Contains(t, io.out.String(), "Login successful")
	assert.Contains(t, io.out.String(), "Jane Doe")
	require.Len(t, apiMock.LoginCalls(), 1)
	assert.Equal(t, "jane@example.com", apiMock.LoginCalls()[0].Email)
}

func TestRunLayers_ListsPage(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		GetLayersFunc: func(ctx context.Context, page, limit int) (*pkgapi.LayersPage, error) {
			return &pkgapi.LayersPage{
				Docs: []models.Layer{
					{ID: "l1", Name: "Parks", Type: models.LayerPublic},
					{ID: "l2", Name: "Cafes", Type: models.LayerPrivate},
				},
				Pagination: models.Pagination{Page: 1, TotalPages: 3, TotalDocs: 25, HasNext: true},
			}, nil
		},
	}

	io := newScriptedIO()
	c := newTestCli(io, apiMock)

	require.NoError(t, c.Run(context.Background(), "layers", nil))

	out := io.out.String()
	assert.Contains(t, out, "Parks")
	assert.Contains(t, out, "Cafes")
	assert.Contains(t, out, "Page 1 of 3")
	assert.Contains(t, out, "mapkeeper layers 2")
}

func TestRunLayers_InvalidPage(t *testing.T) {
	c := newTestCli(newScriptedIO(), &clientapi.ClientAPIMock{})

	err := c.Run(context.Background(), "layers", []string{"zero"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid page")
}

func TestRunMarkers_FiltersByLayer(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		GetMarkersFunc: func(ctx context.Context) ([]models.Marker, error) {
			return []models.Marker{
				{ID: "m1", LayerID: "l1", Title: "Fountain", Color: "#ff0000"},
				{ID: "m2", LayerID: "l2", Title: "Hidden", Color: "#00ff00"},
			}, nil
		},
	}

	io := newScriptedIO()
	c := newTestCli(io, apiMock)

	require.NoError(t, c.Run(context.Background(), "markers", []string{"l1"}))

	out := io.out.String()
	assert.Contains(t, out, "Fountain")
	assert.NotContains(t, out, "Hidden")
}

func TestRunMarkers_AllLayersWhenNoArgs(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		GetLayersFunc: func(ctx context.Context, page, limit int) (*pkgapi.LayersPage, error) {
			return &pkgapi.LayersPage{
				Docs: []models.Layer{
					{ID: "l1", Name: "Parks", Type: models.LayerPublic},
					{ID: "l2", Name: "Cafes", Type: models.LayerPrivate},
				},
				Pagination: models.Pagination{Page: 1, TotalPages: 1},
			}, nil
		},
		GetMarkersFunc: func(ctx context.Context) ([]models.Marker, error) {
			return []models.Marker{
				{ID: "m1", LayerID: "l1", Title: "Fountain", Color: "#ff0000"},
				{ID: "m2", LayerID: "l2", Title: "Terrace", Color: "#00ff00"},
			}, nil
		},
	}

	io := newScriptedIO()
	c := newTestCli(io, apiMock)

	require.NoError(t, c.Run(context.Background(), "markers", nil))

	out := io.out.String()
	assert.Contains(t, out, "Fountain")
	assert.Contains(t, out, "Terrace")
}

func TestRunLayerDelete_Cancelled(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{}
	io := newScriptedIO("n")
	c := newTestCli(io, apiMock)

	require.NoError(t, c.Run(context.Background(), "layer-delete", []string{"l1"}))
	assert.Contains(t, io.out.String(), "Cancelled")
	assert.Empty(t, apiMock.DeleteLayerCalls())
}
