package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
	"github.com/katalvlaran/stepviz/validate"
)

// tourStops is one showcase operation per kind, in catalog order.
var tourStops = []validate.Input{
	{Kind: string(structure.KindArray), Op: "search", Value: "9"},
	{Kind: string(structure.KindString), Op: "search", Value: "L"},
	{Kind: string(structure.KindLinkedList), Op: "insert-tail", Value: "40"},
	{Kind: string(structure.KindStack), Op: "push", Value: "5"},
	{Kind: string(structure.KindQueue), Op: "dequeue"},
	{Kind: string(structure.KindMatrix), Op: "search", Value: "6"},
	{Kind: string(structure.KindTree), Op: "inorder"},
	{Kind: string(structure.KindGraph), Op: "bfs", Start: "A"},
	{Kind: string(structure.KindHashTable), Op: "insert", Key: "grape", Entry: "🍇"},
}

type tourResult struct {
	seq   *step.Sequence
	final structure.Structure
}

func newTourCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tour",
		Short: "Play one operation on every structure at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.tour(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// tour runs every stop in its own session concurrently and prints the
// results in catalog order once all of them have finished.
func (a *app) tour(ctx context.Context, w io.Writer) error {
	results := make([]tourResult, len(tourStops))

	g, ctx := errgroup.WithContext(ctx)
	for i, in := range tourStops {
		g.Go(func() error {
			sess, err := a.session(structure.Kind(in.Kind))
			if err != nil {
				return err
			}
			seq, err := sess.Execute(ctx, in, nil)
			if err != nil {
				return fmt.Errorf("tour %s %s: %w", in.Kind, in.Op, err)
			}
			results[i] = tourResult{seq: seq, final: sess.Snapshot()}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r := a.renderer()
	for _, res := range results {
		info, _ := structure.Describe(res.seq.Kind)
		fmt.Fprintf(w, "== %s %s: %s (%d steps, %s)\n",
			info.Name, res.seq.Op, render.Outcome(res.seq.Outcome), res.seq.Len(), res.seq.Duration())
		fmt.Fprintln(w, r.Structure(res.final, step.Cleared()))
		fmt.Fprintln(w)
	}

	return nil
}
