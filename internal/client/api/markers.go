package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/mapkeeper/internal/models"
	"github.com/iudanet/mapkeeper/pkg/api"
)

// GetMarkers загружает всю коллекцию маркеров (без пагинации)
func (c *Client) GetMarkers(ctx context.Context) ([]models.Marker, error) {
	var markers []models.Marker
	if err := c.doRequest(ctx, http.MethodGet, "/markers", nil, &markers); err != nil {
		return nil, fmt.Errorf("get markers request failed: %w", err)
	}
	return markers, nil
}

// GetMarker загружает один маркер для формы редактирования
func (c *Client) GetMarker(ctx context.Context, id string) (*models.Marker, error) {
	var marker models.Marker
	if err := c.doRequest(ctx, http.MethodGet, "/markers/"+id, nil, &marker); err != nil {
		return nil, fmt.Errorf("get marker request failed: %w", err)
	}
	return &marker, nil
}

// CreateMarker создает новый маркер
func (c *Client) CreateMarker(ctx context.Context, req api.MarkerRequest) (*models.Marker, error) {
	var marker models.Marker
	if err := c.doRequest(ctx, http.MethodPost, "/markers/create", req, &marker); err != nil {
		return nil, fmt.Errorf("create marker request failed: %w", err)
	}
	return &marker, nil
}

// UpdateMarker обновляет существующий маркер
func (c *Client) UpdateMarker(ctx context.Context, id string, req api.MarkerRequest) (*models.Marker, error) {
	var marker models.Marker
	if err := c.doRequest(ctx, http.MethodPatch, "/markers/"+id, req, &marker); err != nil {
		return nil, fmt.Errorf("update marker request failed: %w", err)
	}
	return &marker, nil
}

// DeleteMarker удаляет маркер
func (c *Client) DeleteMarker(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/markers/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete marker request failed: %w", err)
	}
	return nil
}
