package api

import "github.com/iudanet/mapkeeper/internal/models"

// MarkerRequest is the payload for POST /markers/create and
// PATCH /markers/:id. Custom field values are already resolved
// (files uploaded, dates formatted) by the time the request is built.
type MarkerRequest struct {
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Color        string                    `json:"marker_color"`
	LayerID      string                    `json:"layer"`
	Location     models.Location           `json:"location"`
	Preview      *models.FileRef           `json:"preview,omitempty"`
	CustomFields []models.CustomFieldValue `json:"custom_fields,omitempty"`
}
