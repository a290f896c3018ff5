package api

import (
	"context"
	"net/http"
	"strconv"

	"TokenKeeper/internal/dto"
)

// ListUsers возвращает всех пользователей (нужен Bearer-токен).
func (c *Client) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	if err := c.call(ctx, http.MethodGet, "/api/users", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser возвращает пользователя по id.
func (c *Client) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.call(ctx, http.MethodGet, "/api/users/"+strconv.FormatInt(id, 10), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
