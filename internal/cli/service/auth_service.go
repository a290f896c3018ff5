package service

import (
	"context"

	"TokenKeeper/internal/cli/api"
	"TokenKeeper/internal/dto"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Login логирование пользователя; токен сохраняется в хранилище.
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)

	// Logout очищает локальный контекст аутентификации и переходит на страницу входа.
	Logout(ctx context.Context) error

	// CurrentUser возвращает текущего пользователя, если он установлен.
	CurrentUser() (dto.SessionUser, error)

	// Authenticated сообщает, есть ли непустой токен.
	Authenticated() bool
}

// AuthServiceRemote: реализация AuthService поверх HTTP API.
type AuthServiceRemote struct {
	api *api.Client
}

var _ AuthService = (*AuthServiceRemote)(nil)

// NewAuthService конструктор сервиса аутентификации.
func NewAuthService(c *api.Client) *AuthServiceRemote {
	return &AuthServiceRemote{api: c}
}

func (s *AuthServiceRemote) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return s.api.Login(ctx, email, password)
}

func (s *AuthServiceRemote) Logout(ctx context.Context) error {
	return s.api.Helper.Logout(ctx)
}

func (s *AuthServiceRemote) CurrentUser() (dto.SessionUser, error) {
	return s.api.Helper.CurrentUser()
}

func (s *AuthServiceRemote) Authenticated() bool {
	return s.api.Helper.IsAuthenticated()
}
