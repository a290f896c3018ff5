package auth

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Navigator performs the page navigation that follows a logout.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string) error

func (f NavigatorFunc) Navigate(ctx context.Context, path string) error { return f(ctx, path) }

// NopNavigator ignores navigation requests.
type NopNavigator struct{}

func (NopNavigator) Navigate(context.Context, string) error { return nil }

// PrintNavigator tells a terminal user where to go next.
type PrintNavigator struct {
	Out     io.Writer
	BaseURL string
}

func (n PrintNavigator) Navigate(_ context.Context, path string) error {
	_, err := fmt.Fprintf(n.Out, "Redirect: %s%s\n", strings.TrimRight(n.BaseURL, "/"), path)
	return err
}

// Logout clears the session and then navigates to the login page.
// Navigation happens only after the token is gone.
func (h *Helper) Logout(ctx context.Context) error {
	if err := h.ClearSession(); err != nil {
		return err
	}
	h.logger.Debugw("logged out", "redirect", h.loginPath)
	return h.nav.Navigate(ctx, h.loginPath)
}
