// Package markers владеет коллекцией маркеров и операциями над ней:
// загрузкой, созданием и правкой через schema-валидацию, удалением
// вместе с файлом превью.
package markers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	clientapi "github.com/iudanet/mapkeeper/internal/client/api"
	"github.com/iudanet/mapkeeper/internal/client/schema"
	"github.com/iudanet/mapkeeper/internal/client/store"
	"github.com/iudanet/mapkeeper/internal/models"
	pkgapi "github.com/iudanet/mapkeeper/pkg/api"
)

var (
	// ErrNotAuthenticated — операция записи без авторизованного пользователя
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrLocationRequired — маркер без точки на карте не существует
	ErrLocationRequired = errors.New("location is required")
	// ErrMarkerNotFound — маркер не найден в загруженной коллекции
	ErrMarkerNotFound = errors.New("marker not found")
)

// ValidationError переносит пофайловые ошибки схемы до формы.
// Ключ — имя поля, значение — готовое сообщение.
type ValidationError struct {
	Fields schema.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("marker validation failed: %d invalid fields", len(e.Fields))
}

// Authenticator отвечает на единственный вопрос: кто сейчас залогинен.
// Пустая строка означает анонима.
type Authenticator interface {
	CurrentUserID() string
}

// MarkerInput — данные формы маркера. Data держит title, description,
// marker_color и значения custom-полей под их ключами; Fields — схема
// активного слоя, по которой значения валидируются и резолвятся.
type MarkerInput struct {
	LayerID      string
	Location     *models.Location
	Preview      *schema.FileInput
	ClearPreview bool
	Data         *schema.FormData
	Fields       []models.CustomFieldDef
}

// Store owns the marker collection. Mutations go through the server
// and end with a refetch; the collection is never patched locally.
type Store struct {
	api      clientapi.ClientAPI
	auth     Authenticator
	logger   *slog.Logger
	notifier store.Notifier
	fetches  store.FetchGuard
	inflight store.InFlight

	mu            sync.RWMutex
	markers       []models.Marker
	currentMarker *models.Marker
	errMsg        string
	isFetching    bool
	isSending     bool
	isError       bool
}

// Snapshot — иммутабельный срез состояния store
type Snapshot struct {
	Markers       []models.Marker
	CurrentMarker *models.Marker
	Error         string
	IsFetching    bool
	IsSending     bool
	IsError       bool
}

// NewStore создает marker store
func NewStore(apiClient clientapi.ClientAPI, auth Authenticator, logger *slog.Logger) *Store {
	return &Store{
		api:    apiClient,
		auth:   auth,
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
		Markers:    append([]models.Marker(nil), s.markers...),
		Error:      s.errMsg,
		IsFetching: s.isFetching,
		IsSending:  s.isSending,
		IsError:    s.isError,
	}
	if s.currentMarker != nil {
		m := *s.currentMarker
		snap.CurrentMarker = &m
	}
	return snap
}

// FetchAll загружает коллекцию целиком. При ошибке старая коллекция
// остается на месте: карта продолжает показывать последние данные.
func (s *Store) FetchAll(ctx context.Context) error {
	fetchCtx, gen := s.fetches.Begin(ctx)
	s.setLoading()

	markers, err := s.api.GetMarkers(fetchCtx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to fetch markers: %w", err)
	}

	if !s.fetches.Current(gen) {
		return nil
	}

	s.setLoaded(func() {
		s.markers = markers
	})
	return nil
}

// FetchOne загружает один маркер (экран просмотра/правки)
func (s *Store) FetchOne(ctx context.Context, id string) error {
	s.setLoading()

	marker, err := s.api.GetMarker(ctx, id)
	if err != nil {
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to fetch marker %s: %w", id, err)
	}

	s.setLoaded(func() {
		s.currentMarker = marker
	})
	return nil
}

// Create создает маркер. Точка и авторизация проверяются до любого
// I/O; файлы custom-полей и превью загружаются только после того, как
// схема приняла значения.
func (s *Store) Create(ctx context.Context, input MarkerInput) error {
	if s.auth.CurrentUserID() == "" {
		return ErrNotAuthenticated
	}
	if input.Location == nil {
		return ErrLocationRequired
	}

	if err := s.inflight.Begin("markers/create"); err != nil {
		return err
	}
	defer s.inflight.End("markers/create")

	req, err := s.buildRequest(ctx, input, nil)
	if err != nil {
		return err
	}
	req.Location = *input.Location

	s.setSending()
	if _, err := s.api.CreateMarker(ctx, *req); err != nil {
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to create marker: %w", err)
	}

	s.setLoaded(nil)
	return s.FetchAll(ctx)
}

// Update обновляет маркер. Новый файл превью загружается до PATCH,
// старый удаляется после успешного PATCH: неудачное обновление не
// оставляет маркер без картинки.
func (s *Store) Update(ctx context.Context, id string, input MarkerInput) error {
	if s.auth.CurrentUserID() == "" {
		return ErrNotAuthenticated
	}

	key := "markers/update/" + id
	if err := s.inflight.Begin(key); err != nil {
		return err
	}
	defer s.inflight.End(key)

	s.mu.RLock()
	current := s.currentMarker
	s.mu.RUnlock()
	if current == nil || current.ID != id {
		return ErrMarkerNotFound
	}

	var oldPreview *models.FileRef
	keep := current.Preview
	if input.Preview != nil || input.ClearPreview {
		oldPreview = current.Preview
		keep = nil
	}

	req, err := s.buildRequest(ctx, input, keep)
	if err != nil {
		return err
	}
	if input.Location != nil {
		req.Location = *input.Location
	} else {
		req.Location = current.Location
	}

	s.setSending()
	if _, err := s.api.UpdateMarker(ctx, id, *req); err != nil {
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to update marker %s: %w", id, err)
	}

	if oldPreview != nil {
		if err := s.api.DeleteFile(ctx, oldPreview.ID); err != nil {
			// Осиротевший файл не стоит отката обновления
			s.logger.Warn("failed to delete replaced preview", "file_id", oldPreview.ID, "error", err)
		}
	}

	s.setLoaded(func() {
		s.currentMarker = nil
	})
	return s.FetchAll(ctx)
}

// buildRequest валидирует значения формы по схеме слоя, резолвит
// custom-поля и превью и собирает тело запроса. keepPreview — текущее
// превью, которое правка не трогает.
func (s *Store) buildRequest(ctx context.Context, input MarkerInput, keepPreview *models.FileRef) (*pkgapi.MarkerRequest, error) {
	data := input.Data
	if data == nil {
		data = schema.NewFormData()
	}
	data.Set("layer", input.LayerID)

	sch := schema.Build(schema.BaseMarkerRules(), input.Fields)
	if verrs := sch.Validate(data); len(verrs) > 0 {
		err := &ValidationError{Fields: verrs}
		s.setError(err.Error())
		return nil, err
	}

	resolved, err := schema.Resolve(ctx, data, input.Fields, s.api)
	if err != nil {
		s.setError(errorMessage(err))
		return nil, fmt.Errorf("failed to resolve custom fields: %w", err)
	}

	preview := keepPreview
	if input.Preview != nil {
		uploaded, err := s.api.UploadFile(ctx, input.Preview.Name, input.Preview.Data)
		if err != nil {
			s.setError(errorMessage(err))
			return nil, fmt.Errorf("failed to upload preview: %w", err)
		}
		preview = &models.FileRef{ID: uploaded.ID, URL: uploaded.URL}
	}

	title, _ := data.String("title")
	description, _ := data.String("description")
	color, _ := data.String("marker_color")

	return &pkgapi.MarkerRequest{
		Title:        title,
		Description:  description,
		Color:        color,
		LayerID:      input.LayerID,
		Preview:      preview,
		CustomFields: resolved,
	}, nil
}

// Remove удаляет маркер, затем его файл превью. Порядок строгий:
// сперва маркер, чтобы сбой на файле не оставил маркер с битой
// ссылкой на превью.
func (s *Store) Remove(ctx context.Context, id string) error {
	key := "markers/remove/" + id
	if err := s.inflight.Begin(key); err != nil {
		return err
	}
	defer s.inflight.End(key)

	s.mu.RLock()
	var preview *models.FileRef
	for _, m := range s.markers {
		if m.ID == id {
			preview = m.Preview
			break
		}
	}
	s.mu.RUnlock()

	if err := s.api.DeleteMarker(ctx, id); err != nil {
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to remove marker %s: %w", id, err)
	}

	if preview != nil {
		if err := s.api.DeleteFile(ctx, preview.ID); err != nil {
			s.logger.Warn("failed to delete marker preview", "file_id", preview.ID, "error", err)
		}
	}

	return s.FetchAll(ctx)
}

// VisibleMarkers возвращает маркеры, чьи слои отмечены.
// Join по LayerID; порядок коллекции сохраняется.
func (s *Store) VisibleMarkers(checked []models.CheckedLayer) []models.Marker {
	visible := make(map[string]struct{}, len(checked))
	for _, c := range checked {
		visible[c.LayerID] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Marker
	for _, m := range s.markers {
		if _, ok := visible[m.LayerID]; ok {
			out = append(out, m)
		}
	}
	return out
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

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.isFetching = false
	s.isSending = false
	s.isError = true
	s.errMsg = msg
	s.mu.Unlock()
	s.notifier.Notify()
}

func errorMessage(err error) string {
	var apiErr *pkgapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
