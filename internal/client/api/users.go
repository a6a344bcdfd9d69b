package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/mapkeeper/internal/models"
)

// UpdateUserRequest is the PATCH /user/:id payload. Nil fields are left
// untouched by the server; AvatarSet distinguishes "clear avatar" from
// "keep avatar".
type UpdateUserRequest struct {
	FullName  *string         `json:"full_name,omitempty"`
	Avatar    *models.FileRef `json:"avatar,omitempty"`
	AvatarSet bool            `json:"-"`
}

// GetUser загружает профиль текущего пользователя по bearer-токену
func (c *Client) GetUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &user, nil
}

// UpdateUser обновляет профиль и возвращает новую версию целиком
func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	// При явной очистке аватара сервер ожидает avatar: null
	payload := map[string]interface{}{}
	if req.FullName != nil {
		payload["full_name"] = *req.FullName
	}
	if req.AvatarSet {
		payload["avatar"] = req.Avatar
	}

	var user models.User
	if err := c.doRequest(ctx, http.MethodPatch, "/user/"+id, payload, &user); err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &user, nil
}
