// Package layers владеет коллекцией слоев: пагинированной загрузкой,
// схемами custom-полей, набором отмеченных (видимых) слоев и
// черновиком полей при создании нового слоя.
package layers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	clientapi "github.com/iudanet/mapkeeper/internal/client/api"
	"github.com/iudanet/mapkeeper/internal/client/store"
	"github.com/iudanet/mapkeeper/internal/models"
	pkgapi "github.com/iudanet/mapkeeper/pkg/api"
)

// DefaultPageLimit — размер страницы для infinite scroll
const DefaultPageLimit = 10

// Store owns the layer collection. Page 1 replaces the collection,
// later pages append, so the slice accumulates monotonically as the
// view scrolls.
type Store struct {
	api      clientapi.ClientAPI
	logger   *slog.Logger
	notifier store.Notifier
	fetches  store.FetchGuard
	inflight store.InFlight

	mu           sync.RWMutex
	layers       []models.Layer
	currentLayer *models.Layer
	checked      []models.CheckedLayer
	fields       []models.CustomFieldDef
	options      map[string][]string // черновик вариантов select-полей, по ID поля
	pagination   models.Pagination
	errMsg       string
	isFetching   bool
	isSending    bool
	isError      bool
}

// Snapshot является иммутабельным срезом состояния store.
// IsCheckAll выводится из коллекции и набора отмеченных слоев.
type Snapshot struct {
	Layers       []models.Layer
	CurrentLayer *models.Layer
	Checked      []models.CheckedLayer
	Fields       []models.CustomFieldDef
	Pagination   models.Pagination
	IsCheckAll   bool
	Error        string
	IsFetching   bool
	IsSending    bool
	IsError      bool
}

// NewStore создает layer store
func NewStore(apiClient clientapi.ClientAPI, logger *slog.Logger) *Store {
	return &Store{
		api:     apiClient,
		logger:  logger,
		options: make(map[string][]string),
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
		Layers:     append([]models.Layer(nil), s.layers...),
		Checked:    append([]models.CheckedLayer(nil), s.checked...),
		Fields:     append([]models.CustomFieldDef(nil), s.fields...),
		Pagination: s.pagination,
		IsCheckAll: len(s.checked) == len(s.layers),
		Error:      s.errMsg,
		IsFetching: s.isFetching,
		IsSending:  s.isSending,
		IsError:    s.isError,
	}
	if s.currentLayer != nil {
		l := *s.currentLayer
		snap.CurrentLayer = &l
	}
	return snap
}

// FetchPage загружает одну страницу слоев. Страница 1 заменяет
// коллекцию, последующие дописываются в конец. Новый fetch отменяет
// предыдущий: применяется ответ последнего стартовавшего запроса.
func (s *Store) FetchPage(ctx context.Context, page, limit int) error {
	fetchCtx, gen := s.fetches.Begin(ctx)
	s.setLoading()

	resp, err := s.api.GetLayers(fetchCtx, page, limit)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Нас обогнал более новый fetch
			return nil
		}
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to fetch layers page %d: %w", page, err)
	}

	if !s.fetches.Current(gen) {
		return nil
	}

	s.setLoaded(func() {
		if resp.Page > 1 {
			s.layers = append(s.layers, resp.Docs...)
		} else {
			s.layers = resp.Docs
		}
		s.pagination = resp.Pagination

		// Коллекция изменилась: набор видимых слоев выводится заново,
		// все загруженные слои становятся отмеченными (снятые отметки
		// не переживают дозагрузку — осознанный UX-компромисс)
		s.initCheckedLocked()
	})
	return nil
}

// FetchNextPage подгружает следующую страницу, если она есть.
// Вызывается infinite-scroll наблюдателем.
func (s *Store) FetchNextPage(ctx context.Context) error {
	s.mu.RLock()
	p := s.pagination
	s.mu.RUnlock()

	if !p.HasNext {
		return nil
	}

	limit := p.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	return s.FetchPage(ctx, p.Page+1, limit)
}

// FetchOne загружает один слой целиком, включая схему его полей.
// Схема становится активным списком полей для форм маркеров.
func (s *Store) FetchOne(ctx context.Context, id string) error {
	s.setLoading()

	layer, err := s.api.GetLayer(ctx, id)
	if err != nil {
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to fetch layer %s: %w", id, err)
	}

	s.setLoaded(func() {
		s.currentLayer = layer
		s.fields = append([]models.CustomFieldDef(nil), layer.CustomFields...)
	})
	return nil
}

// CreateLayer создает слой из черновика: имя, видимость и поля,
// набранные authoring-операциями. Неудача не трогает коллекцию.
func (s *Store) CreateLayer(ctx context.Context, name string, layerType models.LayerType) error {
	if err := s.inflight.Begin("layers/create"); err != nil {
		return err
	}
	defer s.inflight.End("layers/create")

	if strings.TrimSpace(name) == "" {
		s.setError("Name is a required field")
		return fmt.Errorf("layer name is required")
	}

	fields, err := s.draftFields()
	if err != nil {
		s.setError(err.Error())
		return err
	}

	s.setSending()

	layer, err := s.api.CreateLayer(ctx, pkgapi.CreateLayerRequest{
		Name:         name,
		Type:         layerType,
		CustomFields: fields,
	})
	if err != nil {
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to create layer: %w", err)
	}

	s.setLoaded(func() {
		s.layers = append(s.layers, *layer)
		s.initCheckedLocked()

		// Черновик отработал
		s.fields = nil
		s.options = make(map[string][]string)
	})
	return nil
}

// draftFields собирает поля черновика, подставляя варианты
// select-полей из отдельного черновика опций
func (s *Store) draftFields() ([]models.CustomFieldDef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields := make([]models.CustomFieldDef, 0, len(s.fields))
	for _, f := range s.fields {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("custom field name is required")
		}

		if f.Type == models.FieldSelect {
			opts := make([]string, 0, len(s.options[f.ID]))
			for _, o := range s.options[f.ID] {
				if strings.TrimSpace(o) != "" {
					opts = append(opts, o)
				}
			}
			if f.IsImportant && len(opts) == 0 {
				return nil, fmt.Errorf("select field %q must have at least one option", f.Name)
			}
			f.SelectOptions = opts
		}

		fields = append(fields, f)
	}
	return fields, nil
}

// RemoveLayer удаляет слой и перечитывает коллекцию с первой страницы.
// Сервер каскадно удаляет маркеры слоя, которых клиент не отслеживает,
// поэтому согласованность достигается перечиткой, не локальной правкой.
func (s *Store) RemoveLayer(ctx context.Context, id string) error {
	key := "layers/remove/" + id
	if err := s.inflight.Begin(key); err != nil {
		return err
	}
	defer s.inflight.End(key)

	if err := s.api.DeleteLayer(ctx, id); err != nil {
		s.setError(errorMessage(err))
		return fmt.Errorf("failed to remove layer %s: %w", id, err)
	}

	s.mu.RLock()
	limit := s.pagination.Limit
	s.mu.RUnlock()
	if limit == 0 {
		limit = DefaultPageLimit
	}

	return s.FetchPage(ctx, 1, limit)
}

// InitCheckedFromCollection re-derives the checked set from the loaded
// collection: every layer becomes checked. Explicit re-derivation, not a
// merge — a layer unchecked before the collection changed comes back
// checked.
func (s *Store) InitCheckedFromCollection() {
	s.mu.Lock()
	s.initCheckedLocked()
	s.mu.Unlock()
	s.notifier.Notify()
}

func (s *Store) initCheckedLocked() {
	if len(s.layers) == 0 {
		return
	}
	checked := make([]models.CheckedLayer, 0, len(s.layers))
	for _, l := range s.layers {
		checked = append(checked, models.CheckedLayer{LayerID: l.ID, UserID: l.UserID})
	}
	s.checked = checked
}

// SetChecked заменяет набор отмеченных слоев
func (s *Store) SetChecked(checked []models.CheckedLayer) {
	s.mu.Lock()
	s.checked = append([]models.CheckedLayer(nil), checked...)
	s.mu.Unlock()
	s.notifier.Notify()
}

// ToggleChecked отмечает или снимает один слой
func (s *Store) ToggleChecked(layerID, userID string, checked bool) {
	s.mu.Lock()
	if checked {
		s.checked = append(s.checked, models.CheckedLayer{LayerID: layerID, UserID: userID})
	} else {
		next := s.checked[:0]
		for _, c := range s.checked {
			if c.LayerID != layerID {
				next = append(next, c)
			}
		}
		s.checked = next
	}
	s.mu.Unlock()
	s.notifier.Notify()
}

// CheckAll отмечает все слои или снимает все отметки
func (s *Store) CheckAll(checked bool) {
	s.mu.Lock()
	if checked {
		s.initCheckedLocked()
	} else {
		s.checked = nil
	}
	s.mu.Unlock()
	s.notifier.Notify()
}

// CheckOwnedBy оставляет отмеченными только слои данного пользователя
// (режим "мои слои"); checked=false снимает все отметки
func (s *Store) CheckOwnedBy(checked bool, userID string) {
	s.mu.Lock()
	if checked {
		var mine []models.CheckedLayer
		for _, l := range s.layers {
			if l.UserID == userID {
				mine = append(mine, models.CheckedLayer{LayerID: l.ID, UserID: l.UserID})
			}
		}
		s.checked = mine
	} else {
		s.checked = nil
	}
	s.mu.Unlock()
	s.notifier.Notify()
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
