// Package cli implements the multimode command-line interface.
//
// This package provides commands for projecting multimode graphs stored as
// JSON and for inspecting the categories of a node attribute. The CLI is
// built using cobra and logs through the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - project: Project one category onto another through an intermediate one
//   - categories: List the values of a node attribute with their node counts
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports recovered lookup failures and per-phase timings. Loggers are
// passed through context.Context.
//
// # Example
//
//	import "github.com/joancf/Multimode-Networks/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger. Lines carry a centisecond clock
// ("14:32:01.45") so phase timings can be read off a verbose run.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a CLI step that runs outside the projection job, such as
// loading the input graph.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Loaded network.json (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey struct{}

// withLogger attaches l to ctx for the project and categories commands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger stored by withLogger, or
// log.Default() when a command runs without the root hook (as in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
