package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/chainctl/internal/app"
	"github.com/vk/chainctl/internal/cli"
	"github.com/vk/chainctl/internal/ctxlog"
)

// main is the entrypoint for the chainctl binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Startup panics (broken manifests, a bad network selector) are
// recovered here so the user sees a clean message instead of a stack trace.
func run(outW, errW io.Writer, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	ctx := ctxlog.WithLogger(context.Background(), slog.Default())

	cfg := app.NewConfig(ctx, args)
	chainctlApp := app.NewApp(outW, errW, cfg, nil)

	return chainctlApp.Run(ctx)
}
