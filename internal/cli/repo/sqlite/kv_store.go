package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"TokenKeeper/internal/cli/repo"
	"TokenKeeper/internal/dto"

	_ "modernc.org/sqlite"
)

// KVStore: строковое key-value хранилище поверх локальной SQLite,
// аналог localStorage: один ключ, одно значение, запись перезаписывает.
type KVStore struct {
	db *sql.DB
}

var _ repo.SessionStore = (*KVStore)(nil)

// Open открывает (и создаёт при необходимости) файл БД по пути dbPath.
func Open(dbPath string) (*KVStore, error) {
	if dbPath == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite не любит конкурентных писателей в одном процессе
	db.SetMaxOpenConns(1)
	return &KVStore{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *KVStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие таблицы storage.
func (s *KVStore) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// Get возвращает значение ключа и признак его наличия.
func (s *KVStore) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set записывает значение, перезаписывая предыдущее.
func (s *KVStore) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO storage(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

// Delete удаляет ключ; отсутствующий ключ не ошибка.
func (s *KVStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM storage WHERE key = ?`, key)
	return err
}

func (s *KVStore) Save(token string) error { return s.Set(repo.TokenKey, token) }

func (s *KVStore) Load() (string, error) {
	v, ok, err := s.Get(repo.TokenKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", repo.ErrNoToken
	}
	return v, nil
}

func (s *KVStore) Remove() error { return s.Delete(repo.TokenKey) }

// SaveUser хранит контекст пользователя JSON-строкой под ключом "user".
func (s *KVStore) SaveUser(u dto.SessionUser) error {
	if u.Email == "" {
		return errors.New("empty email")
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.Set(repo.UserKey, string(b))
}

func (s *KVStore) LoadUser() (dto.SessionUser, error) {
	var u dto.SessionUser
	v, ok, err := s.Get(repo.UserKey)
	if err != nil {
		return u, err
	}
	if !ok {
		return u, repo.ErrNoUser
	}
	err = json.Unmarshal([]byte(v), &u)
	return u, err
}

func (s *KVStore) RemoveUser() error { return s.Delete(repo.UserKey) }
