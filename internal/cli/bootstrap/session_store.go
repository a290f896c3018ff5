package bootstrap

import (
	"fmt"
	"strings"

	"TokenKeeper/internal/cli/repo"
	fsrepo "TokenKeeper/internal/cli/repo/fs"
	"TokenKeeper/internal/cli/repo/keyring"
	"TokenKeeper/internal/cli/repo/memory"
	reposqlite "TokenKeeper/internal/cli/repo/sqlite"
	"TokenKeeper/internal/config"
)

// OpenSessionStore открывает хранилище токена, выбранное в конфиге (cfg.TokenStore),
// и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы с хранилищем, чтобы закрыть соединение с БД.
func OpenSessionStore(cfg *config.Config) (repo.SessionStore, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(cfg.TokenStore) {
	case "", "file":
		s, err := fsrepo.NewAuthFSStore(cfg.TokenDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open token dir: %w", err)
		}
		return s, noop, nil
	case "sqlite":
		s, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open client db: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate client db: %w", err)
		}
		return s, s.Close, nil
	case "keyring":
		return keyring.New(keyring.DefaultService), noop, nil
	case "memory":
		return memory.New(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q (want file, sqlite, keyring or memory)", cfg.TokenStore)
	}
}
