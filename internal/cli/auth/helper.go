// Package auth is the client-side session helper: it keeps the auth token,
// attaches it to outgoing requests, logs out and formats dates for display.
package auth

import (
	"net/http"
	"time"

	"TokenKeeper/internal/cli/format"
	"TokenKeeper/internal/cli/repo"

	"go.uber.org/zap"
)

// DefaultLoginPath is where Logout sends the user.
const DefaultLoginPath = "/login.html"

// Helper bundles the session operations over an injected store, HTTP client and navigator.
// It holds no state of its own; every call reads the store afresh.
type Helper struct {
	store     repo.TokenStore
	users     repo.UserContextStore
	client    *http.Client
	nav       Navigator
	dates     *format.Formatter
	logger    *zap.SugaredLogger
	loginPath string
}

// Option customises a Helper.
type Option func(*Helper)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(h *Helper) {
		if c != nil {
			h.client = c
		}
	}
}

// WithNavigator sets the navigation effect used by Logout.
func WithNavigator(n Navigator) Option {
	return func(h *Helper) { h.nav = n }
}

// WithUserStore enables remembering the signed-in user next to the token.
func WithUserStore(s repo.UserContextStore) Option {
	return func(h *Helper) { h.users = s }
}

// WithDateFormat sets locale and time zone for FormatDate.
func WithDateFormat(locale string, loc *time.Location) Option {
	return func(h *Helper) { h.dates = format.New(locale, loc) }
}

// WithLogger sets the logger; the default is a no-op logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(h *Helper) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithLoginPath overrides DefaultLoginPath.
func WithLoginPath(p string) Option {
	return func(h *Helper) {
		if p != "" {
			h.loginPath = p
		}
	}
}

// NewHelper builds a Helper over store. If store also implements
// repo.UserContextStore it is used for the user context unless WithUserStore says otherwise.
func NewHelper(store repo.TokenStore, opts ...Option) *Helper {
	h := &Helper{
		store:     store,
		client:    http.DefaultClient,
		nav:       NopNavigator{},
		dates:     format.New("es-ES", nil),
		logger:    zap.NewNop().Sugar(),
		loginPath: DefaultLoginPath,
	}
	if us, ok := store.(repo.UserContextStore); ok {
		h.users = us
	}
	for _, o := range opts {
		o(h)
	}
	h.logger.Infow("auth helper loaded", "login_path", h.loginPath, "locale", h.dates.Tag.String())
	return h
}

// FormatDate renders value as a long localized date with hour and minute.
// Unparseable input yields format.InvalidDate.
func (h *Helper) FormatDate(value string) string {
	return h.dates.Format(value)
}

// FormatTime renders an already parsed time in the helper's locale and zone.
func (h *Helper) FormatTime(t time.Time) string {
	return h.dates.FormatTime(t)
}
