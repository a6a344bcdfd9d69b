// Package session владеет идентичностью текущего пользователя и
// жизненным циклом аутентификации: login, регистрация, OAuth, logout,
// восстановление сессии и обновление профиля.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/iudanet/mapkeeper/internal/client/api"
	"github.com/iudanet/mapkeeper/internal/client/schema"
	"github.com/iudanet/mapkeeper/internal/client/storage"
	"github.com/iudanet/mapkeeper/internal/client/store"
	"github.com/iudanet/mapkeeper/internal/models"
	"github.com/iudanet/mapkeeper/internal/validation"
	pkgapi "github.com/iudanet/mapkeeper/pkg/api"
)

// Store owns the current user. Exactly one or zero users are held at a
// time; the collection of all users never exists on the client.
type Store struct {
	api      clientapi.ClientAPI
	cache    storage.SessionStorage
	logger   *slog.Logger
	notifier store.Notifier

	mu          sync.RWMutex
	currentUser *models.User
	errMsg      string
	isFetching  bool
	isSending   bool
	isError     bool
}

// Snapshot является иммутабельным срезом состояния store
type Snapshot struct {
	CurrentUser *models.User
	Error       string
	IsFetching  bool
	IsSending   bool
	IsError     bool
}

// NewStore создает session store. Зависимости передаются явно,
// глобальных инстансов нет.
func NewStore(apiClient clientapi.ClientAPI, cache storage.SessionStorage, logger *slog.Logger) *Store {
	return &Store{
		api:    apiClient,
		cache:  cache,
		logger: logger,
	}
}

// Subscribe регистрирует подписчика на изменения состояния
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.notifier.Subscribe(fn)
}

// Snapshot возвращает копию текущего состояния
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Error:      s.errMsg,
		IsFetching: s.isFetching,
		IsSending:  s.isSending,
		IsError:    s.isError,
	}
	if s.currentUser != nil {
		u := *s.currentUser
		snap.CurrentUser = &u
	}
	return snap
}

// Login выполняет вход по email и паролю.
// При неверных credentials currentUser остается nil, а сообщение
// об ошибке попадает в состояние store для показа в UI.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading()

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.setError(errorMessage(err), func() {
			s.currentUser = nil
		})
		return fmt.Errorf("login failed: %w", err)
	}

	s.setLoaded(func() {
		user := resp.User
		s.currentUser = &user
	})

	s.persistSession(ctx)
	return nil
}

// Register регистрирует новый аккаунт и сразу открывает сессию
func (s *Store) Register(ctx context.Context, fullName, email, password string) error {
	if err := validation.ValidateFullName(fullName); err != nil {
		s.setError(err.Error(), nil)
		return fmt.Errorf("invalid full name: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		s.setError(err.Error(), nil)
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		s.setError(err.Error(), nil)
		return fmt.Errorf("invalid password: %w", err)
	}

	s.setLoading()

	resp, err := s.api.Register(ctx, fullName, email, password)
	if err != nil {
		s.setError(errorMessage(err), nil)
		return fmt.Errorf("registration failed: %w", err)
	}

	s.setLoaded(func() {
		user := resp.User
		s.currentUser = &user
	})

	s.persistSession(ctx)
	return nil
}

// SignInGoogle обменивает Google identity token на сессию.
// Контракт успеха/ошибки тот же, что у Login.
func (s *Store) SignInGoogle(ctx context.Context, accessToken string) error {
	s.setLoading()

	resp, err := s.api.SignInGoogle(ctx, accessToken)
	if err != nil {
		s.setError(errorMessage(err), nil)
		return fmt.Errorf("google sign-in failed: %w", err)
	}

	s.setLoaded(func() {
		user := resp.User
		s.currentUser = &user
	})

	s.persistSession(ctx)
	return nil
}

// FetchCurrentSession загружает профиль по текущему bearer-токену.
// Если токен мертв, пробует refresh и повторяет. Двойная неудача
// молча приводит к анонимному состоянию — наружу ошибка не уходит.
func (s *Store) FetchCurrentSession(ctx context.Context) {
	s.setLoading()

	user, err := s.api.GetUser(ctx)
	if err != nil {
		if refreshErr := s.api.Refresh(ctx); refreshErr != nil {
			s.logger.Info("session could not be restored", "error", refreshErr)
			s.toAnonymous()
			return
		}

		user, err = s.api.GetUser(ctx)
		if err != nil {
			s.logger.Info("profile fetch failed after refresh", "error", err)
			s.toAnonymous()
			return
		}
	}

	s.setLoaded(func() {
		s.currentUser = user
	})

	s.persistSession(ctx)
}

// RestoreSession поднимает сессию из локального кэша: токены уходят в
// TokenSource, профиль становится текущим до ревалидации сервером.
// Возвращает false, если кэшированной сессии нет.
func (s *Store) RestoreSession(ctx context.Context) (bool, error) {
	cached, err := s.cache.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cached session: %w", err)
	}

	s.api.Tokens().Set(cached.AccessToken, cached.RefreshToken)

	s.setLoaded(func() {
		s.currentUser = &models.User{
			ID:       cached.UserID,
			FullName: cached.FullName,
			Email:    cached.Email,
		}
	})

	return true, nil
}

// Logout завершает сессию. Локальное состояние чистится безусловно,
// даже если сервер недоступен: с точки зрения UI logout не может
// не получиться.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("server logout failed, clearing local session anyway", "error", err)
	}

	if err := s.cache.DeleteSession(ctx); err != nil {
		s.logger.Warn("failed to delete cached session", "error", err)
	}

	s.setLoaded(func() {
		s.currentUser = nil
		s.errMsg = ""
	})
}

// UpdateProfileInput описывает изменения профиля.
// Avatar задает новый файл; ClearAvatar явно удаляет существующий.
type UpdateProfileInput struct {
	FullName    *string
	Avatar      *schema.FileInput
	ClearAvatar bool
}

// UpdateProfile обновляет профиль. Новый аватар сначала загружается
// через файловый сервис; явная очистка удаляет старый файл, чтобы не
// копить осиротевшие загрузки.
func (s *Store) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) error {
	s.setSending()

	var oldAvatar *models.FileRef
	s.mu.RLock()
	if s.currentUser != nil {
		oldAvatar = s.currentUser.Avatar
	}
	s.mu.RUnlock()

	req := clientapi.UpdateUserRequest{FullName: input.FullName}

	if input.Avatar != nil {
		uploaded, err := s.api.UploadFile(ctx, input.Avatar.Name, input.Avatar.Data)
		if err != nil {
			s.setError(errorMessage(err), nil)
			return fmt.Errorf("avatar upload failed: %w", err)
		}
		req.Avatar = &models.FileRef{ID: uploaded.ID, URL: uploaded.URL}
		req.AvatarSet = true
	} else if input.ClearAvatar && oldAvatar != nil {
		if err := s.api.DeleteFile(ctx, oldAvatar.ID); err != nil {
			s.logger.Warn("failed to delete old avatar", "file_id", oldAvatar.ID, "error", err)
		}
		req.AvatarSet = true
	}

	user, err := s.api.UpdateUser(ctx, id, req)
	if err != nil {
		s.setError(errorMessage(err), nil)
		return fmt.Errorf("profile update failed: %w", err)
	}

	// Профиль заменяется целиком версией сервера
	s.setLoaded(func() {
		s.currentUser = user
	})

	s.persistSession(ctx)
	return nil
}

// TokenExpiry возвращает время истечения access token из его exp claim.
// Подпись не проверяется: клиент не владеет ключом сервера, срок нужен
// только для подсказки в status.
func (s *Store) TokenExpiry() (time.Time, bool) {
	access, _ := s.api.Tokens().Pair()
	if access == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// CurrentUserID возвращает ID авторизованного пользователя,
// пустая строка — аноним
func (s *Store) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return ""
	}
	return s.currentUser.ID
}

// persistSession сохраняет токены и профиль в локальный кэш.
// Ошибка кэша не фатальна для операции, которая его обновляла.
func (s *Store) persistSession(ctx context.Context) {
	s.mu.RLock()
	user := s.currentUser
	s.mu.RUnlock()
	if user == nil {
		return
	}

	access, refresh := s.api.Tokens().Pair()
	data := &storage.SessionData{
		UserID:       user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		AccessToken:  access,
		RefreshToken: refresh,
	}

	if err := s.cache.SaveSession(ctx, data); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
}

// PersistTokens обновляет токены в кэше, не трогая профиль.
// Подключается к facade как onRefresh callback.
func (s *Store) PersistTokens(access, refresh string) {
	ctx := context.Background()

	cached, err := s.cache.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			s.logger.Warn("failed to read cached session", "error", err)
		}
		return
	}

	cached.AccessToken = access
	cached.RefreshToken = refresh
	if err := s.cache.SaveSession(ctx, cached); err != nil {
		s.logger.Warn("failed to persist refreshed tokens", "error", err)
	}
}

func (s *Store) toAnonymous() {
	s.api.Tokens().Clear()
	s.setLoaded(func() {
		s.currentUser = nil
	})
}

func (s *Store) setLoading() {
	s.mu.Lock()
	s.isFetching = true
	s.isError = false
	s.errMsg = ""
	s.mu.Unlock()
	s.notifier.Notify()
}

func (s *Store) setSending() {
	s.mu.Lock()
	s.isSending = true
	s.isError = false
	s.errMsg = ""
	s.mu.Unlock()
	s.notifier.Notify()
}

func (s *Store) setLoaded(apply func()) {
	s.mu.Lock()
	s.isFetching = false
	s.isSending = false
	s.isError = false
	if apply != nil {
		apply()
	}
	s.mu.Unlock()
	s.notifier.Notify()
}

func (s *Store) setError(msg string, apply func()) {
	s.mu.Lock()
	s.isFetching = false
	s.isSending = false
	s.isError = true
	s.errMsg = msg
	if apply != nil {
		apply()
	}
	s.mu.Unlock()
	s.notifier.Notify()
}

// errorMessage достает человекочитаемое сообщение для UI
func errorMessage(err error) string {
	var apiErr *pkgapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
