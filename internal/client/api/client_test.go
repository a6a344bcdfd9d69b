package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mapkeeper/internal/models"
	"github.com/iudanet/mapkeeper/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:3001/api"
	client := NewClient(baseURL, testLogger())

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.httpClient.Jar)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешный логин и сохранение токенов
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", req.Email)

		resp := api.AuthResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         models.User{ID: "u1", Email: "a@b.com", FullName: "Test User"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	resp, err := client.Login(context.Background(), "a@b.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.User.ID)

	// Токены должны попасть в общий TokenSource
	access, refresh := client.Tokens().Pair()
	assert.Equal(t, "access-1", access)
	assert.Equal(t, "refresh-1", refresh)
}

// TestClient_Login_BadCredentials проверяет маппинг ошибки сервера
func TestClient_Login_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "wrong email or password"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "wrong email or password")

	// Токены не сохраняются
	access, _ := client.Tokens().Pair()
	assert.Empty(t, access)
}

// TestClient_BearerInjection проверяет подстановку Authorization заголовка
func TestClient_BearerInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.Tokens().Set("my-token", "")

	_, err := client.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

// TestClient_RefreshRetry проверяет прозрачный повтор после 401:
// первый запрос получает 401, refresh выдает новый токен, повтор
// уходит уже с ним.
func TestClient_RefreshRetry(t *testing.T) {
	var refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "a@b.com"})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		_ = json.NewEncoder(w).Encode(api.RefreshResponse{AccessToken: "fresh", RefreshToken: "refresh-2"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.Tokens().Set("stale", "refresh-1")

	user, err := client.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, int32(1), refreshCalls.Load())

	// Новый токен виден всем последующим запросам
	access, _ := client.Tokens().Pair()
	assert.Equal(t, "fresh", access)
}

// TestClient_RefreshCoalescing: два конкурентных запроса, оба получают
// 401 — refresh должен выполниться ровно один раз (singleflight).
func TestClient_RefreshCoalescing(t *testing.T) {
	var refreshCalls atomic.Int32

	// Барьер: оба запроса должны получить 401 одновременно
	var barrier sync.WaitGroup
	barrier.Add(2)

	mux := http.NewServeMux()
	mux.HandleFunc("/markers", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			barrier.Done()
			barrier.Wait()
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Marker{})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		// Держим refresh открытым, чтобы оба ожидающих присоединились
		time.Sleep(50 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(api.RefreshResponse{AccessToken: "fresh", RefreshToken: "r2"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.Tokens().Set("stale", "r1")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.GetMarkers(context.Background())
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), refreshCalls.Load(), "concurrent 401s must coalesce into one refresh")
}

// TestClient_RefreshFailure: неудачный refresh возвращает исходную 401,
// а не ошибку refresh
func TestClient_RefreshFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.Tokens().Set("stale", "dead")

	_, err := client.GetUser(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "token expired")
}

// TestClient_OnRefresh проверяет вызов callback после успешного refresh
func TestClient_OnRefresh(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.RefreshResponse{AccessToken: "a2", RefreshToken: "r2"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	var gotAccess, gotRefresh string
	client.SetOnRefresh(func(access, refresh string) {
		gotAccess, gotRefresh = access, refresh
	})

	require.NoError(t, client.Refresh(context.Background()))
	assert.Equal(t, "a2", gotAccess)
	assert.Equal(t, "r2", gotRefresh)
}

// TestClient_Logout_ClearsTokensOnError: локальные credentials чистятся
// даже если сервер ответил ошибкой
func TestClient_Logout_ClearsTokensOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.Tokens().Set("a1", "r1")

	err := client.Logout(context.Background())
	assert.Error(t, err)

	access, refresh := client.Tokens().Pair()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

// TestClient_UploadFile проверяет multipart загрузку
func TestClient_UploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/files", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "photo.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		_ = json.NewEncoder(w).Encode(api.FileResponse{ID: "f1", URL: "http://files/f1.png"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	resp, err := client.UploadFile(context.Background(), "photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "f1", resp.ID)
	assert.Equal(t, "http://files/f1.png", resp.URL)
}

// TestClient_UploadFile_RetryAfterRefresh: multipart транспорт разделяет
// политику refresh-повтора с JSON транспортом
func TestClient_UploadFile_RetryAfterRefresh(t *testing.T) {
	var uploads atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/files", func(w http.ResponseWriter, r *http.Request) {
		uploads.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		// Тело должно быть воспроизведено полностью при повторе
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "data", string(content))

		_ = json.NewEncoder(w).Encode(api.FileResponse{ID: "f2", URL: "u"})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.RefreshResponse{AccessToken: "fresh", RefreshToken: "r"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.Tokens().Set("stale", "r")

	resp, err := client.UploadFile(context.Background(), "a.bin", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "f2", resp.ID)
	assert.Equal(t, int32(2), uploads.Load())
}

// TestClient_NotFound проверяет маппинг 404
func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "marker not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.GetMarker(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}
