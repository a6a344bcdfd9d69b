package api

import "github.com/iudanet/mapkeeper/internal/models"

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleSignInRequest exchanges a Google identity token for a session.
type GoogleSignInRequest struct {
	AccessToken string `json:"accessToken"` // токен, полученный от Google OAuth
}

// AuthResponse is returned by login, registration and Google sign-in.
// The refresh token is additionally set as an HTTP-only cookie by the
// server; the body copy is informational.
type AuthResponse struct {
	AccessToken  string      `json:"access_token"`  // JWT access token
	RefreshToken string      `json:"refresh_token"` // refresh token
	User         models.User `json:"user"`          // профиль пользователя
}

// RefreshResponse представляет ответ на обновление токенов.
// Сервер читает refresh token из cookie.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
