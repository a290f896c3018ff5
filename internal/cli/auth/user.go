package auth

import (
	"errors"

	"TokenKeeper/internal/dto"
)

// ErrNoUserStore is returned when the helper was built without a user context store.
var ErrNoUserStore = errors.New("user context store is not configured")

// SaveUser remembers who is signed in.
func (h *Helper) SaveUser(u dto.SessionUser) error {
	if h.users == nil {
		return ErrNoUserStore
	}
	return h.users.SaveUser(u)
}

// CurrentUser returns the remembered user, or repo.ErrNoUser.
func (h *Helper) CurrentUser() (dto.SessionUser, error) {
	if h.users == nil {
		return dto.SessionUser{}, ErrNoUserStore
	}
	return h.users.LoadUser()
}

// ClearSession removes the token and the remembered user. Unlike Logout it has no navigation effect.
func (h *Helper) ClearSession() error {
	if err := h.RemoveToken(); err != nil {
		return err
	}
	if h.users != nil {
		if err := h.users.RemoveUser(); err != nil {
			return err
		}
	}
	return nil
}
