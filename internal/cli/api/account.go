package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"TokenKeeper/internal/dto"
)

// ErrInvalidCredentials: сервер ответил 401 на login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInactiveUser: учётная запись ещё не активирована (пароль не задан).
var ErrInactiveUser = errors.New("user is inactive: set a password first")

// Register регистрирует пользователя; пароль задаётся позже по ссылке из письма.
func (c *Client) Register(ctx context.Context, fullName, email string) (string, error) {
	if strings.TrimSpace(fullName) == "" {
		return "", dto.ErrFullNameRequired
	}
	if err := dto.ValidateEmail(email); err != nil {
		return "", err
	}
	var out dto.MessageResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{FullName: fullName, Email: email}, http.StatusCreated, &out)
	return out.Message, err
}

// SetPassword задаёт начальный пароль по одноразовому токену регистрации.
func (c *Client) SetPassword(ctx context.Context, token, password string) (string, error) {
	if token == "" {
		return "", dto.ErrTokenRequired
	}
	if err := dto.ValidateNewPassword(password); err != nil {
		return "", err
	}
	var out dto.MessageResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/set-password",
		dto.SetPasswordRequest{Token: token, Password: password}, http.StatusOK, &out)
	return out.Message, err
}

// Login аутентифицирует пользователя и сохраняет токен и контекст пользователя.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	if err := dto.ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, dto.ErrPasswordRequired
	}
	var out dto.AuthResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: email, Password: password}, http.StatusOK, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			switch se.Code {
			case http.StatusUnauthorized:
				return nil, ErrInvalidCredentials
			case http.StatusForbidden:
				return nil, ErrInactiveUser
			}
		}
		return nil, err
	}
	if err := c.PersistAuth(&out); err != nil {
		return nil, fmt.Errorf("saving auth: %w", err)
	}
	return &out, nil
}

// PersistAuth сохраняет токен из ответа login и, если возможно, контекст пользователя.
func (c *Client) PersistAuth(resp *dto.AuthResponse) error {
	if resp == nil || resp.Token == "" {
		return errors.New("no token in response")
	}
	if err := c.Helper.SaveToken(resp.Token); err != nil {
		return err
	}
	if resp.Email == "" {
		return nil
	}
	return c.Helper.SaveUser(dto.SessionUser{Email: resp.Email, FullName: resp.FullName})
}

// ForgotPassword запрашивает письмо для сброса пароля.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := dto.ValidateEmail(email); err != nil {
		return "", err
	}
	var out dto.MessageResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/forgot-password",
		dto.ForgotPasswordRequest{Email: email}, http.StatusOK, &out)
	return out.Message, err
}

// ResetPassword устанавливает новый пароль по токену сброса.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" {
		return "", dto.ErrTokenRequired
	}
	if err := dto.ValidateNewPassword(newPassword); err != nil {
		return "", err
	}
	var out dto.MessageResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/reset-password",
		dto.ResetPasswordRequest{Token: token, NewPassword: newPassword}, http.StatusOK, &out)
	return out.Message, err
}
