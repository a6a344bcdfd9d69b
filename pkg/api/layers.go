package api

import "github.com/iudanet/mapkeeper/internal/models"

// LayersPage is the paginated envelope returned by GET /layers.
type LayersPage struct {
	Docs []models.Layer `json:"docs"` // слои текущей страницы
	models.Pagination
}

// CreateLayerRequest представляет запрос на создание слоя
type CreateLayerRequest struct {
	Name         string                  `json:"name"`
	Type         models.LayerType        `json:"type"`
	CustomFields []models.CustomFieldDef `json:"custom_fields,omitempty"`
}
