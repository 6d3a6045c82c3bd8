package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/coregx/rex/cache"
	"github.com/coregx/rex/internal/logging"
)

const cacheCapacity = 64

// initializeAppContext prepares logging and the compile cache after the
// command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)

	level := logging.LevelNormal
	if cmd.Bool("debug") {
		level = logging.LevelDebug
	}
	e.Log = logging.New(e.Stderr, level)

	c, err := cache.New(cacheCapacity)
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare compile cache: %w", err)
	}
	e.Cache = c

	e.Log.Debug("Program started", zap.Strings("args", cmd.Args().Slice()), zap.String("runtime", runtime.Version()))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) (err error) {
	e := envFromContext(ctx)

	if e.Cache != nil {
		e.Log.Debug("Releasing compile cache", zap.Int("patterns", e.Cache.Len()))
		e.Cache.Close()
	}
	// syncing a terminal or pipe reports EINVAL/ENOTTY on some systems
	if er := e.Log.Sync(); er != nil && !errors.Is(er, syscall.EINVAL) && !errors.Is(er, syscall.ENOTTY) {
		err = multierr.Append(err, fmt.Errorf("unable to flush log: %w", er))
	}
	return
}

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	envFromContext(ctx).Log.Error("Program ended with error", zap.Error(err))
}

func newApp(e *env) *cli.Command {
	return &cli.Command{
		Name:            "rex",
		Usage:           "build regular expressions from named fragments and match them",
		HideHelpCommand: true,
		Writer:          e.Stdout,
		ErrWriter:       e.Stderr,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "report debug information on stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:      "pattern",
				Usage:     "Prints the pattern built from a recipe",
				Action:    runPattern,
				Flags:     recipeFlags(),
				ArgsUsage: " ",
			},
			{
				Name:   "match",
				Usage:  "Matches inputs against a recipe and prints the named groups (YAML)",
				Action: runMatch,
				Flags: append(recipeFlags(),
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"},
						Usage: "match `MODE`: search, prefix or full (overrides the recipe)"},
				),
				ArgsUsage: "INPUT...",
			},
			{
				Name:   "builtins",
				Usage:  "Lists the embedded recipes",
				Action: runBuiltins,
			},
		},
	}
}

func recipeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "recipe", Aliases: []string{"r"}, Usage: "load recipe from `FILE` (YAML)"},
		&cli.StringFlag{Name: "builtin", Aliases: []string{"b"}, Usage: "use embedded recipe `NAME`"},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	e := &env{Stdout: os.Stdout, Stderr: os.Stderr}
	err := newApp(e).Run(contextWithEnv(ctx, e), os.Args)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
