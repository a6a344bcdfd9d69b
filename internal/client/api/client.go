package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/mapkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером.
// Все запросы идут с bearer-токеном из общего TokenSource; ответ 401
// прозрачно обрабатывается одним refresh-повтором на исходный запрос.
// Конкурентные 401 сливаются в один вызов /auth/refresh (singleflight).
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *TokenSource
	logger     *slog.Logger
	refreshGrp singleflight.Group
	onRefresh  func(access, refresh string)
}

// NewClient создает новый API клиент.
// Cookie jar нужен для refresh token, который сервер передает
// HTTP-only cookie и который клиентский код напрямую не читает.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		tokens:  NewTokenSource(),
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
}

// Tokens returns the shared token source. The session store reads it to
// persist credentials and writes it when restoring a cached session.
func (c *Client) Tokens() *TokenSource {
	return c.tokens
}

// SetOnRefresh registers a callback invoked after every successful token
// refresh, with the new token pair. Used by the session store to keep the
// local cache in sync. Must be set during wiring, before first use.
func (c *Client) SetOnRefresh(fn func(access, refresh string)) {
	c.onRefresh = fn
}

// doRequest выполняет JSON запрос с политикой refresh-повтора
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var payload []byte
	contentType := ""
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = jsonData
		contentType = "application/json"
	}
	return c.doRaw(ctx, method, path, contentType, payload, result)
}

// doRaw выполняет запрос с произвольным телом. Единая точка политики
// повтора: на 401 делается ровно один refresh и ровно один повтор,
// неудачный refresh возвращает исходную ошибку.
func (c *Client) doRaw(ctx context.Context, method, path, contentType string, payload []byte, result interface{}) error {
	err := c.send(ctx, method, path, contentType, payload, result)
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return err
	}

	if refreshErr := c.refreshTokens(ctx); refreshErr != nil {
		c.logger.Warn("token refresh failed", "path", path, "error", refreshErr)
		return err // исходная 401, не ошибка refresh
	}

	return c.send(ctx, method, path, contentType, payload, result)
}

// refreshTokens обновляет токены через /auth/refresh.
// Конкурентные вызовы коалесцируются: выполняется ровно один запрос,
// его результат получают все ожидающие.
func (c *Client) refreshTokens(ctx context.Context) error {
	_, err, _ := c.refreshGrp.Do("refresh", func() (interface{}, error) {
		var resp api.RefreshResponse
		if err := c.send(ctx, http.MethodGet, "/auth/refresh", "", nil, &resp); err != nil {
			return nil, fmt.Errorf("refresh request failed: %w", err)
		}

		// Все последующие запросы видят новый токен
		c.tokens.Set(resp.AccessToken, resp.RefreshToken)

		if c.onRefresh != nil {
			c.onRefresh(resp.AccessToken, resp.RefreshToken)
		}

		c.logger.Debug("access token refreshed")
		return nil, nil
	})
	return err
}

// send выполняет один HTTP запрос без политики повтора
func (c *Client) send(ctx context.Context, method, path, contentType string, payload []byte, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Access(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &api.Error{Status: resp.StatusCode}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = string(respBody)
		}

		c.logger.Debug("request failed", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
