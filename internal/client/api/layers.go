package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/iudanet/mapkeeper/internal/models"
	"github.com/iudanet/mapkeeper/pkg/api"
)

// GetLayers загружает одну страницу слоев
func (c *Client) GetLayers(ctx context.Context, page, limit int) (*api.LayersPage, error) {
	var resp api.LayersPage
	path := "/layers?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get layers request failed: %w", err)
	}
	return &resp, nil
}

// GetLayer загружает один слой вместе со схемой его полей
func (c *Client) GetLayer(ctx context.Context, id string) (*models.Layer, error) {
	var layer models.Layer
	if err := c.doRequest(ctx, http.MethodGet, "/layers/"+id, nil, &layer); err != nil {
		return nil, fmt.Errorf("get layer request failed: %w", err)
	}
	return &layer, nil
}

// CreateLayer создает новый слой
func (c *Client) CreateLayer(ctx context.Context, req api.CreateLayerRequest) (*models.Layer, error) {
	var layer models.Layer
	if err := c.doRequest(ctx, http.MethodPost, "/layers/create", req, &layer); err != nil {
		return nil, fmt.Errorf("create layer request failed: %w", err)
	}
	return &layer, nil
}

// DeleteLayer удаляет слой. Сервер каскадно удаляет маркеры слоя,
// поэтому после удаления коллекцию нужно перечитать целиком.
func (c *Client) DeleteLayer(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/layers/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete layer request failed: %w", err)
	}
	return nil
}
