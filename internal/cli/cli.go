package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/joancf/Multimode-Networks/pkg/buildinfo"
	"github.com/joancf/Multimode-Networks/pkg/errors"
	"github.com/joancf/Multimode-Networks/pkg/graph"
	pkgio "github.com/joancf/Multimode-Networks/pkg/io"
	"github.com/joancf/Multimode-Networks/pkg/multimode"
	"github.com/joancf/Multimode-Networks/pkg/observability"
)

// appName is the application name used for display.
const appName = "multimode"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Multimode projects multimode networks through a shared node group",
		Long: `Multimode transforms a graph whose nodes belong to categories (modes) into a
weighted graph that links two categories through a third, intermediate one.

For example, actors connected to events, and events connected to organizations,
become actors connected directly to organizations, weighted by the events they
share.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetProjectionHooks(newLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.projectCommand())
	root.AddCommand(c.categoriesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Graph Helpers
// =============================================================================

// loadGraph validates path and reads the JSON graph it names.
func loadGraph(path string) (*graph.Graph, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return pkgio.ImportJSON(path)
}

// hostFor exposes g's views to a projection job.
func hostFor(g *graph.Graph) multimode.Host {
	return multimode.HostFunc(func(directed bool) multimode.GraphView {
		return g.View(directed)
	})
}
