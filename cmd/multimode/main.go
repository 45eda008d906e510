package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joancf/Multimode-Networks/internal/cli"
	"github.com/joancf/Multimode-Networks/pkg/errors"
)

// Exit codes. An interrupted projection exits like a shell job killed by
// SIGINT (128 + 2).
const (
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		code := exitCode(err)
		if code != exitInterrupted {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

// exitCode maps a command error to the process exit status. Bad flags,
// job files and categories are usage errors.
func exitCode(err error) int {
	if stderrors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeUnsupported:
		return exitUsage
	case errors.ErrCodeCancelled:
		return exitInterrupted
	}
	return exitFailure
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, including phase timings and lookup failures")

	// The level is known only after flag parsing, and must be set before
	// the root hook hands the logger to the projection job.
	installHooks := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if installHooks != nil {
			return installHooks(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
