package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
	"github.com/katalvlaran/stepviz/validate"
)

const (
	outputText  = "text"
	outputTable = "table"
	outputYAML  = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

type runFlags struct {
	input  validate.Input
	output string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <kind> <op>",
		Short: "Play one operation on the seed state of a structure",
		Long: `Run validates the operation against the seed state, then either plays it
step by step (text) or prints the whole step sequence at once (table, yaml).`,
		Example: `  stepviz run array search --value 9
  stepviz run hashtable insert --key grape --entry 🍇 --output table
  stepviz run graph bfs --start C --instant
  stepviz run graph dfs --depth 2 --output table`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.input.Kind, f.input.Op = args[0], args[1]

			return a.runOperation(cmd.Context(), cmd.OutOrStdout(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.input.Value, "value", "", "operand: a number, or a character for strings")
	fl.StringVar(&f.input.Index, "index", "", "position for array, string and linked list operations")
	fl.StringVar(&f.input.Row, "row", "", "matrix row")
	fl.StringVar(&f.input.Col, "col", "", "matrix column")
	fl.StringVar(&f.input.Key, "key", "", "hash table key")
	fl.StringVar(&f.input.Entry, "entry", "", "hash table value to insert")
	fl.StringVar(&f.input.Start, "start", "", "graph start node")
	fl.StringVar(&f.input.Depth, "depth", "", "graph walk depth limit in edges")
	fl.StringVarP(&f.output, "output", "o", outputText, "output format: text, table or yaml")

	return cmd
}

func (a *app) runOperation(ctx context.Context, w io.Writer, f runFlags) error {
	kind, err := structure.ParseKind(strings.ToLower(strings.TrimSpace(f.input.Kind)))
	if err != nil {
		return err
	}
	sess, err := a.session(kind)
	if err != nil {
		return err
	}

	switch f.output {
	case outputYAML:
		seq, err := sess.Prepare(f.input)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(seq)
		if err != nil {
			return fmt.Errorf("encode sequence: %w", err)
		}
		_, err = w.Write(data)

		return err
	case outputTable:
		seq, err := sess.Prepare(f.input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, render.StepTable(seq))

		return err
	case outputText:
		r := a.renderer()
		fmt.Fprintln(w, r.Structure(sess.Snapshot(), step.Cleared()))
		seq, err := sess.Execute(ctx, f.input, func(i int, s step.Step) {
			fmt.Fprintf(w, "\n%2d. %s\n", i+1, s.Caption)
			fmt.Fprintln(w, r.Structure(sess.Snapshot(), s.Highlight))
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "\n%s (%d steps, %s)\n", render.Outcome(seq.Outcome), seq.Len(), seq.Duration())

		return err
	default:
		return fmt.Errorf("%w %q", errUnknownOutput, f.output)
	}
}
