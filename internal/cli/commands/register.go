package commands

import (
	"TokenKeeper/internal/config"
	"context"
	"fmt"
	"strings"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register; the password is set from the e-mailed link" }
func (registerCmd) Usage() string       { return "register <email> <full name...>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	msg, err := s.api.Register(ctx, strings.Join(args[1:], " "), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

// tokenPasswordCmd: общая форма для set-password и reset-password: <token> <password>.
type tokenPasswordCmd struct {
	name, desc string
	call       func(s *session, ctx context.Context, token, password string) (string, error)
}

func (c tokenPasswordCmd) Name() string        { return c.name }
func (c tokenPasswordCmd) Description() string { return c.desc }
func (c tokenPasswordCmd) Usage() string       { return c.name + " <token> <password>" }

func (c tokenPasswordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	msg, err := c.call(s, ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

type forgotPasswordCmd struct{}

func (forgotPasswordCmd) Name() string        { return "forgot-password" }
func (forgotPasswordCmd) Description() string { return "Request a password reset e-mail" }
func (forgotPasswordCmd) Usage() string       { return "forgot-password <email>" }

func (forgotPasswordCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	msg, err := s.api.ForgotPassword(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, msg)
	return nil
}

func init() {
	RegisterCmd(registerCmd{})
	RegisterCmd(forgotPasswordCmd{})
	RegisterCmd(tokenPasswordCmd{
		name: "set-password",
		desc: "Set the initial password with the registration token",
		call: func(s *session, ctx context.Context, token, password string) (string, error) {
			return s.api.SetPassword(ctx, token, password)
		},
	})
	RegisterCmd(tokenPasswordCmd{
		name: "reset-password",
		desc: "Set a new password with the reset token",
		call: func(s *session, ctx context.Context, token, password string) (string, error) {
			return s.api.ResetPassword(ctx, token, password)
		},
	})
}
