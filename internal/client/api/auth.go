package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/mapkeeper/pkg/api"
)

// Login выполняет аутентификацию пользователя.
// Успешный ответ заменяет credentials в общем TokenSource.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	req := api.LoginRequest{Email: email, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	c.tokens.Set(resp.AccessToken, resp.RefreshToken)
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, fullName, email, password string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	req := api.RegisterRequest{FullName: fullName, Email: email, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/registration", req, &resp); err != nil {
		return nil, fmt.Errorf("registration request failed: %w", err)
	}
	c.tokens.Set(resp.AccessToken, resp.RefreshToken)
	return &resp, nil
}

// SignInGoogle обменивает Google identity token на сессию
func (c *Client) SignInGoogle(ctx context.Context, accessToken string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	req := api.GoogleSignInRequest{AccessToken: accessToken}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/google", req, &resp); err != nil {
		return nil, fmt.Errorf("google sign-in request failed: %w", err)
	}
	c.tokens.Set(resp.AccessToken, resp.RefreshToken)
	return &resp, nil
}

// Refresh явно обновляет токены. Использует тот же коалесцированный
// refresh, что и прозрачный повтор после 401.
func (c *Client) Refresh(ctx context.Context) error {
	return c.refreshTokens(ctx)
}

// Logout инвалидирует сессию на сервере и чистит локальные credentials.
// Локальная очистка выполняется даже при ошибке сервера.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doRequest(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.tokens.Clear()
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}
