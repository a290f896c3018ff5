package auth

import (
	"errors"

	"TokenKeeper/internal/cli/repo"
)

// GetToken returns the stored token, or repo.ErrNoToken when none is stored.
func (h *Helper) GetToken() (string, error) {
	return h.store.Load()
}

// SaveToken stores token as-is, replacing any previous value.
func (h *Helper) SaveToken(token string) error {
	return h.store.Save(token)
}

// RemoveToken deletes the stored token. It is a no-op when nothing is stored.
func (h *Helper) RemoveToken() error {
	return h.store.Remove()
}

// IsAuthenticated reports whether a non-empty token is currently stored.
func (h *Helper) IsAuthenticated() bool {
	tok, err := h.GetToken()
	if err != nil {
		if !errors.Is(err, repo.ErrNoToken) {
			h.logger.Warnw("token store read failed", "error", err)
		}
		return false
	}
	return tok != ""
}
