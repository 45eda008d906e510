package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joancf/Multimode-Networks/pkg/config"
	"github.com/joancf/Multimode-Networks/pkg/errors"
	pkgio "github.com/joancf/Multimode-Networks/pkg/io"
	"github.com/joancf/Multimode-Networks/pkg/multimode"
)

// progressBuffer bounds the reports queued between the job and the spinner.
// Reports beyond it are dropped.
const progressBuffer = 64

// projectCommand creates the project command.
func (c *CLI) projectCommand() *cobra.Command {
	var (
		configPath string
		output     string
		flags      config.File
	)

	cmd := &cobra.Command{
		Use:   "project [graph.json]",
		Short: "Project one node category onto another through an intermediate category",
		Long: `Project one node category onto another through an intermediate category.

Nodes are grouped by the value of --attribute. Every node of category --in is
linked to every node of category --out it reaches through a node of category
--common. The new edge weight is the sum, over the shared intermediate nodes,
of the products of the two edge weights. Only weights strictly above
--threshold produce an edge. Nodes without the attribute match the category
"null".

Every new edge is tagged "<in><---><out>" in the MMNT-EdgeType edge column.

Settings may also come from a TOML or YAML --config file and from MULTIMODE_*
environment variables (a .env file is loaded if present). Flags win over both.`,
		Example: `  multimode project network.json -a type --in actor --common event --out org --remove-nodes
  multimode project network.json -c job.toml -t 1.5 -o projected.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(settings, flags, cmd.Flags().Changed)
			return c.runProject(cmd.Context(), args[0], *settings, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "job file (.toml, .yaml or .yml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.projected.json)")

	cmd.Flags().StringVarP(&flags.Attribute, "attribute", "a", "", "node attribute holding the category")
	cmd.Flags().StringVar(&flags.In, "in", "", "category of the first group")
	cmd.Flags().StringVar(&flags.Common, "common", "", "category of the intermediate group")
	cmd.Flags().StringVar(&flags.Out, "out", "", "category of the second group")
	cmd.Flags().Float64VarP(&flags.Threshold, "threshold", "t", 0, "minimum weight (exclusive) of a new edge")
	cmd.Flags().BoolVar(&flags.RemoveEdges, "remove-edges", false, "remove the edges that were projected")
	cmd.Flags().BoolVar(&flags.RemoveNodes, "remove-nodes", false, "remove the intermediate nodes (implies their edges)")
	cmd.Flags().BoolVar(&flags.ConsiderDirected, "directed", false, "use edge directions and create directed edges")

	return cmd
}

// applyFlags copies the explicitly set flags in src onto dst.
func applyFlags(dst *config.File, src config.File, changed func(string) bool) {
	if changed("attribute") {
		dst.Attribute = src.Attribute
	}
	if changed("in") {
		dst.In = src.In
	}
	if changed("common") {
		dst.Common = src.Common
	}
	if changed("out") {
		dst.Out = src.Out
	}
	if changed("threshold") {
		dst.Threshold = src.Threshold
	}
	if changed("remove-edges") {
		dst.RemoveEdges = src.RemoveEdges
	}
	if changed("remove-nodes") {
		dst.RemoveNodes = src.RemoveNodes
	}
	if changed("directed") {
		dst.ConsiderDirected = src.ConsiderDirected
	}
}

// runProject loads the graph, runs the projection, and writes the result.
func (c *CLI) runProject(ctx context.Context, input string, settings config.File, output string) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateColumnName(settings.Attribute); err != nil {
		return err
	}
	for _, cat := range []struct{ flag, value string }{
		{"in", settings.In},
		{"common", settings.Common},
		{"out", settings.Out},
	} {
		if err := errors.ValidateCategory(cat.value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "--%s", cat.flag)
		}
	}

	load := newProgress(logger)
	g, err := loadGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	load.done(fmt.Sprintf("Loaded %s", input))

	updates := make(chan multimode.Progress, progressBuffer)
	opts := settings.Options()
	opts.Logger = logger
	opts.Progress = multimode.ChannelProgress(updates)

	job, err := multimode.NewJob(hostFor(g), g, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Projecting %s through %s...", opts.Label(), settings.Common))
	spinner.Start()
	job.Start(ctx)

wait:
	for {
		select {
		case p := <-updates:
			spinner.Update(p)
		case <-job.Done():
			break wait
		}
	}
	res := job.Wait()

	if res.Err != nil {
		spinner.StopWithError("Projection failed: " + errors.UserMessage(res.Err))
		return res.Err
	}
	if res.Cancelled {
		spinner.Stop()
		if ctx.Err() != nil {
			printWarning("Projection stopped after %s; graph not written", res.Phase)
			return ctx.Err()
		}
		return errors.New(errors.ErrCodeCancelled, "projection stopped after %s", res.Phase)
	}
	spinner.Stop()

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".projected.json"
	}
	if err := pkgio.ExportJSON(g, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Projection complete")
	printFile(outputPath)
	printSummary(res, opts.Label())
	printStats(g.NodeCount(), g.EdgeCount())
	printNewline()
	printNextStep("Inspect", fmt.Sprintf("%s categories %s -a %q", appName, outputPath, settings.Attribute))

	return nil
}
