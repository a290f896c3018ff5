package commands

import (
	"TokenKeeper/internal/config"
	"context"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the auth token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()

	resp, err := s.auth.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	name := resp.FullName
	if name == "" {
		name = resp.Email
	}
	fmt.Fprintf(Out, "Logged in as %s\n", name)
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored token and go to the login page" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := s.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
