package repo

import "errors"

// TokenKey: ключ, под которым токен лежит в key-value хранилищах.
const TokenKey = "token"

// ErrNoToken возвращается Load, когда токен ещё не сохранён или был удалён.
var ErrNoToken = errors.New("no stored token")

// TokenStore описывает абстракцию хранилища auth-токена на клиенте.
// Значение хранится как есть: пустая строка тоже валидный токен.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	// Remove удаляет токен; отсутствие токена ошибкой не считается.
	Remove() error
}
