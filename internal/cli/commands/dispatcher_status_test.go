package commands

import (
	"context"
	"fmt"
	"testing"

	"TokenKeeper/internal/config"

	"github.com/stretchr/testify/assert"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}

	out := captureOut(t)
	assert.Equal(t, 2, Dispatch(ctx, cfg, []string{}))
	assert.Contains(t, out.String(), "TokenKeeper CLI")
	for _, name := range []string{"login", "logout", "register", "set-password", "forgot-password", "reset-password", "status", "token", "users", "user", "date"} {
		assert.Contains(t, out.String(), name)
	}

	out.Reset()
	assert.Equal(t, 0, Dispatch(ctx, cfg, []string{"help"}))
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	assert.Equal(t, 0, Dispatch(ctx, cfg, []string{"help", "login"}))
	assert.Equal(t, "Usage: login <email> <password>\n", out.String())

	out.Reset()
	assert.Equal(t, 2, Dispatch(ctx, cfg, []string{"help", "nope"}))
	assert.Contains(t, out.String(), "Unknown command: nope")

	assert.Equal(t, 2, Dispatch(ctx, cfg, []string{"no-such"}))
}

func TestDispatcher_RunPaths(t *testing.T) {
	ctx := context.Background()
	out := captureOut(t)

	RegisterCmd(fakeCmd{name: "x", usage: "x", run: func(context.Context, *config.Config, []string) error { return nil }})
	assert.Equal(t, 0, Dispatch(ctx, &config.Config{}, []string{"X"}), "names are case-insensitive")

	RegisterCmd(fakeCmd{name: "u", usage: "u <arg>", run: func(context.Context, *config.Config, []string) error {
		return fmt.Errorf("wrapped: %w", ErrUsage)
	}})
	assert.Equal(t, 2, Dispatch(ctx, &config.Config{}, []string{"u"}))
	assert.Contains(t, out.String(), "Usage: u <arg>")

	out.Reset()
	RegisterCmd(fakeCmd{name: "e", usage: "e", run: func(context.Context, *config.Config, []string) error { return fmt.Errorf("boom") }})
	assert.Equal(t, 1, Dispatch(ctx, &config.Config{}, []string{"e"}))
	assert.Contains(t, out.String(), "e error: boom")

	t.Cleanup(func() {
		delete(registry, "x")
		delete(registry, "u")
		delete(registry, "e")
	})
}
