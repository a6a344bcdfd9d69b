package api

import (
	"context"
	"io"

	"github.com/iudanet/mapkeeper/internal/models"
	"github.com/iudanet/mapkeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс API клиента для stores.
// Stores зависят от интерфейса, чтобы тесты могли подставить mock.
type ClientAPI interface {
	// Login выполняет аутентификацию и сохраняет токены
	Login(ctx context.Context, email string, password string) (*api.AuthResponse, error)

	// Register регистрирует нового пользователя
	Register(ctx context.Context, fullName string, email string, password string) (*api.AuthResponse, error)

	// SignInGoogle обменивает Google identity token на сессию
	SignInGoogle(ctx context.Context, accessToken string) (*api.AuthResponse, error)

	// Refresh явно обновляет токены (коалесцируется с повторами после 401)
	Refresh(ctx context.Context) error

	// Logout инвалидирует сессию и чистит локальные credentials
	Logout(ctx context.Context) error

	// GetUser загружает профиль текущего пользователя
	GetUser(ctx context.Context) (*models.User, error)

	// UpdateUser обновляет профиль
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error)

	// GetLayers загружает страницу слоев
	GetLayers(ctx context.Context, page int, limit int) (*api.LayersPage, error)

	// GetLayer загружает один слой со схемой полей
	GetLayer(ctx context.Context, id string) (*models.Layer, error)

	// CreateLayer создает слой
	CreateLayer(ctx context.Context, req api.CreateLayerRequest) (*models.Layer, error)

	// DeleteLayer удаляет слой
	DeleteLayer(ctx context.Context, id string) error

	// GetMarkers загружает всю коллекцию маркеров
	GetMarkers(ctx context.Context) ([]models.Marker, error)

	// GetMarker загружает один маркер
	GetMarker(ctx context.Context, id string) (*models.Marker, error)

	// CreateMarker создает маркер
	CreateMarker(ctx context.Context, req api.MarkerRequest) (*models.Marker, error)

	// UpdateMarker обновляет маркер
	UpdateMarker(ctx context.Context, id string, req api.MarkerRequest) (*models.Marker, error)

	// DeleteMarker удаляет маркер
	DeleteMarker(ctx context.Context, id string) error

	// UploadFile загружает файл через multipart транспорт
	UploadFile(ctx context.Context, filename string, r io.Reader) (*api.FileResponse, error)

	// DeleteFile удаляет загруженный файл
	DeleteFile(ctx context.Context, id string) error

	// Tokens возвращает общий источник bearer-токенов
	Tokens() *TokenSource
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
