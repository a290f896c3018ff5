package commands

import (
	"TokenKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"strconv"

	"TokenKeeper/internal/cli/repo"
	"TokenKeeper/internal/dto"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether a token is stored and for whom" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	if !s.auth.Authenticated() {
		fmt.Fprintln(Out, "Status: not authenticated")
		return nil
	}
	u, err := s.auth.CurrentUser()
	switch {
	case err == nil:
		fmt.Fprintf(Out, "Status: authenticated as %s <%s>\n", u.FullName, u.Email)
	case errors.Is(err, repo.ErrNoUser):
		fmt.Fprintln(Out, "Status: authenticated")
	default:
		return err
	}
	return nil
}

type tokenCmd struct{}

func (tokenCmd) Name() string        { return "token" }
func (tokenCmd) Description() string { return "Print the stored token" }
func (tokenCmd) Usage() string       { return "token" }

func (tokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	tok, err := s.helper.GetToken()
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, tok)
	return nil
}

type usersCmd struct{}

func (usersCmd) Name() string        { return "users" }
func (usersCmd) Description() string { return "List registered users" }
func (usersCmd) Usage() string       { return "users" }

func (usersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	list, err := s.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No users")
		return nil
	}
	for _, u := range list {
		printUser(s, u)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

type userCmd struct{}

func (userCmd) Name() string        { return "user" }
func (userCmd) Description() string { return "Show one user by id" }
func (userCmd) Usage() string       { return "user <id>" }

func (userCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	u, err := s.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	printUser(s, *u)
	return nil
}

func printUser(s *session, u dto.UserResponse) {
	state := "active"
	if !u.Active {
		state = "inactive"
	}
	created := s.helper.FormatTime(u.CreatedAt)
	fmt.Fprintf(Out, "- #%d  %s <%s>  %s  %s\n", u.ID, u.FullName, u.Email, state, created)
}

type dateCmd struct{}

func (dateCmd) Name() string        { return "date" }
func (dateCmd) Description() string { return "Format a timestamp the way listings do" }
func (dateCmd) Usage() string       { return "date <timestamp>" }

func (dateCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer done()
	fmt.Fprintln(Out, s.helper.FormatDate(args[0]))
	return nil
}

func init() {
	RegisterCmd(statusCmd{})
	RegisterCmd(tokenCmd{})
	RegisterCmd(usersCmd{})
	RegisterCmd(userCmd{})
	RegisterCmd(dateCmd{})
}
