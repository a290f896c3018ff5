package fs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"TokenKeeper/internal/cli/repo"
	"TokenKeeper/internal/dto"
)

// AuthFSStore: файловое хранилище токена и контекста пользователя для CLI.
// Каждый ключ лежит в отдельном файле внутри Dir.
type AuthFSStore struct {
	Dir string

	mu sync.Mutex
}

var _ repo.SessionStore = (*AuthFSStore)(nil)

// NewAuthFSStore создаёт хранилище в каталоге dir; пустой dir: каталог по умолчанию.
func NewAuthFSStore(dir string) (*AuthFSStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &AuthFSStore{Dir: dir}, nil
}

// DefaultDir возвращает <UserConfigDir>/TokenKeeper.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "TokenKeeper"), nil
}

func (s *AuthFSStore) path(key string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, key), nil
}

func (s *AuthFSStore) write(key string, b []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	// пишем во временный файл и переименовываем, чтобы не оставить обрезанное значение
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

func (s *AuthFSStore) read(key string) ([]byte, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *AuthFSStore) remove(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Save сохраняет auth‑токен в файл без каких-либо преобразований.
func (s *AuthFSStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(repo.TokenKey, []byte(token))
}

// Load читает auth‑токен из файла. Пустой файл: это сохранённая пустая строка.
func (s *AuthFSStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok, err := s.read(repo.TokenKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", repo.ErrNoToken
	}
	return string(b), nil
}

// Remove удаляет файл токена.
func (s *AuthFSStore) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(repo.TokenKey)
}

// SaveUser сохраняет контекст пользователя в JSON-файл.
func (s *AuthFSStore) SaveUser(u dto.SessionUser) error {
	if u.Email == "" {
		return errors.New("empty email")
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(repo.UserKey, b)
}

// LoadUser читает контекст пользователя.
func (s *AuthFSStore) LoadUser() (dto.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var u dto.SessionUser
	b, ok, err := s.read(repo.UserKey)
	if err != nil {
		return u, err
	}
	if !ok || len(b) == 0 {
		return u, repo.ErrNoUser
	}
	if err := json.Unmarshal(b, &u); err != nil {
		return u, err
	}
	return u, nil
}

// RemoveUser удаляет контекст пользователя.
func (s *AuthFSStore) RemoveUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(repo.UserKey)
}
