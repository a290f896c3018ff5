package repo

import (
	"errors"

	"TokenKeeper/internal/dto"
)

// UserKey: ключ контекста пользователя в key-value хранилищах.
const UserKey = "user"

// ErrNoUser возвращается LoadUser, если контекст пользователя не сохранён.
var ErrNoUser = errors.New("no stored user")

// UserContextStore абстракция для хранения контекста пользователя (последний успешный login).
type UserContextStore interface {
	SaveUser(u dto.SessionUser) error
	LoadUser() (dto.SessionUser, error)
	RemoveUser() error
}

// SessionStore объединяет токен и контекст пользователя; все встроенные бэкенды реализуют оба.
type SessionStore interface {
	TokenStore
	UserContextStore
}
