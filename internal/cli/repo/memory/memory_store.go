package memory

import (
	"errors"
	"sync"

	"TokenKeeper/internal/cli/repo"
	"TokenKeeper/internal/dto"
)

// Store keeps the session in process memory. Each Store is an isolated session,
// so several logical sessions can live in one process.
type Store struct {
	mu       sync.RWMutex
	token    string
	hasToken bool
	user     *dto.SessionUser
}

var _ repo.SessionStore = (*Store)(nil)

func New() *Store { return &Store{} }

func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.hasToken = token, true
	return nil
}

func (s *Store) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasToken {
		return "", repo.ErrNoToken
	}
	return s.token, nil
}

func (s *Store) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.hasToken = "", false
	return nil
}

func (s *Store) SaveUser(u dto.SessionUser) error {
	if u.Email == "" {
		return errors.New("empty email")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	return nil
}

func (s *Store) LoadUser() (dto.SessionUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return dto.SessionUser{}, repo.ErrNoUser
	}
	return *s.user, nil
}

func (s *Store) RemoveUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
