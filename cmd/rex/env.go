package main

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/coregx/rex/cache"
	"github.com/coregx/rex/internal/logging"
)

// env is the state shared by all commands of one run.
type env struct {
	Log    *zap.Logger
	Cache  *cache.Cache
	Stdout io.Writer
	Stderr io.Writer
}

type envKey struct{}

func contextWithEnv(ctx context.Context, e *env) context.Context {
	return context.WithValue(ctx, envKey{}, e)
}

// envFromContext never returns nil: commands run without Before still get a
// silent logger. The fallback has no compile cache.
func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{Log: logging.New(os.Stderr, logging.LevelNone), Stdout: os.Stdout, Stderr: os.Stderr}
}
