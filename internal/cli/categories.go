package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joancf/Multimode-Networks/pkg/errors"
	"github.com/joancf/Multimode-Networks/pkg/multimode"
)

// categoriesCommand creates the categories command.
func (c *CLI) categoriesCommand() *cobra.Command {
	var attribute string

	cmd := &cobra.Command{
		Use:   "categories [graph.json]",
		Short: "List the values of a node attribute",
		Long: `List the distinct values of a node attribute with the number of nodes holding
each. Nodes without the attribute are counted under "null". Use the values as
--in, --common and --out for the project command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCategories(cmd.Context(), args[0], attribute)
		},
	}

	cmd.Flags().StringVarP(&attribute, "attribute", "a", "", "node attribute to inspect (required)")
	_ = cmd.MarkFlagRequired("attribute")

	return cmd
}

func (c *CLI) runCategories(ctx context.Context, input, attribute string) error {
	if err := errors.ValidateColumnName(attribute); err != nil {
		return err
	}
	g, err := loadGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	if !g.NodeColumns().Has(attribute) {
		loggerFromContext(ctx).Warn("attribute not present on any node",
			"attribute", attribute,
			"available", strings.Join(g.NodeColumns().Sorted(), ", "))
	}

	cats := multimode.Categories(g.View(false), attribute)
	printInfo("%s %s", StyleTitle.Render(attribute), StyleDim.Render(fmt.Sprintf("(%d values)", len(cats))))
	printCategories(cats)
	return nil
}
