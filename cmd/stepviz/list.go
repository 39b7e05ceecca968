package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/runner"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

func newListCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the structures and the operations each supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), render.CatalogTable(structure.Catalog(), operationNames))

			return err
		},
	}
}

func operationNames(kind structure.Kind) []string {
	ops := runner.Operations(kind)
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}

	return names
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <kind>",
		Short: "Show the seed state of a structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := structure.ParseKind(args[0])
			if err != nil {
				return err
			}
			info, _ := structure.Describe(kind)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %s (%s)\n", info.Name, info.Description, info.Complexity)
			_, err = fmt.Fprintln(w, a.renderer().Structure(structure.Seed(kind), step.Cleared()))

			return err
		},
	}
}
