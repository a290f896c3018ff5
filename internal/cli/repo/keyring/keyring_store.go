// Package keyring stores the session in the operating system keyring.
package keyring

import (
	"encoding/json"
	"errors"

	"TokenKeeper/internal/cli/repo"
	"TokenKeeper/internal/dto"

	gokeyring "github.com/zalando/go-keyring"
)

// DefaultService is the keyring service name entries are filed under.
const DefaultService = "TokenKeeper"

// Store keeps the token and the user context as two keyring secrets.
type Store struct {
	Service string
}

var _ repo.SessionStore = (*Store)(nil)

func New(service string) *Store {
	if service == "" {
		service = DefaultService
	}
	return &Store{Service: service}
}

func (s *Store) get(key string) (string, bool, error) {
	v, err := gokeyring.Get(s.Service, key)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) del(key string) error {
	err := gokeyring.Delete(s.Service, key)
	if err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return err
	}
	return nil
}

// Save persists the token to the system keyring.
func (s *Store) Save(token string) error {
	return gokeyring.Set(s.Service, repo.TokenKey, token)
}

// Load retrieves the token from the system keyring.
func (s *Store) Load() (string, error) {
	v, ok, err := s.get(repo.TokenKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", repo.ErrNoToken
	}
	return v, nil
}

// Remove deletes the token from the system keyring.
func (s *Store) Remove() error { return s.del(repo.TokenKey) }

func (s *Store) SaveUser(u dto.SessionUser) error {
	if u.Email == "" {
		return errors.New("empty email")
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return gokeyring.Set(s.Service, repo.UserKey, string(b))
}

func (s *Store) LoadUser() (dto.SessionUser, error) {
	var u dto.SessionUser
	v, ok, err := s.get(repo.UserKey)
	if err != nil {
		return u, err
	}
	if !ok {
		return u, repo.ErrNoUser
	}
	err = json.Unmarshal([]byte(v), &u)
	return u, err
}

func (s *Store) RemoveUser() error { return s.del(repo.UserKey) }
