package commands

import (
	"net/http"

	"TokenKeeper/internal/cli/api"
	"TokenKeeper/internal/cli/auth"
	"TokenKeeper/internal/cli/bootstrap"
	"TokenKeeper/internal/cli/service"
	"TokenKeeper/internal/config"
)

// session: всё, что нужно команде для работы с сервером.
type session struct {
	helper *auth.Helper
	api    *api.Client
	auth   service.AuthService
}

// openSession открывает хранилище токена и собирает helper/клиент API.
// Возвращённый done нужно вызвать по окончании работы.
func openSession(cfg *config.Config) (*session, func() error, error) {
	store, done, err := bootstrap.OpenSessionStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	h := auth.NewHelper(store,
		auth.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		auth.WithNavigator(auth.PrintNavigator{Out: Out, BaseURL: cfg.ServerURL}),
		auth.WithLoginPath(cfg.LoginPath),
		auth.WithDateFormat(cfg.Locale, cfg.Location()),
		auth.WithLogger(logger),
	)
	c := api.NewClient(cfg.ServerURL, h)
	return &session{helper: h, api: c, auth: service.NewAuthService(c)}, done, nil
}
