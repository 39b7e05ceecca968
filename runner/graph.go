package runner

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

// graph records a walk as node-visit and edge-hop steps. Every step
// carries the visited set as it stood at that moment; the last step
// carries the complete set with nothing else highlighted.
func (r *run) graph() (step.Outcome, error) {
	g := r.b.Work().(*structure.Graph)
	start := r.p().Start
	if start == "" {
		start, _ = g.First()
	}

	var (
		visited []string
		current string
		order   []string
	)
	visit := func(id string) {
		current = id
		order = append(order, id)
		r.b.Show(step.On(step.Node(id)).WithVisited(visited), r.t.NodeVisit, "visit %s", id)
	}
	hop := func(from, to string) {
		r.b.Show(step.On(step.Node(current)).WithVisited(visited).WithEdge(from, to), r.t.EdgeHop, "edge %s-%s", from, to)
	}

	depth := r.p().Depth
	var err error
	if r.req.Op == OpDFS {
		opts := []dfs.Option{
			dfs.WithOnVisit(func(id string) error {
				visited = append(visited, id)
				visit(id)
				return nil
			}),
			dfs.WithOnEdge(func(from, to string) error {
				hop(from, to)
				return nil
			}),
		}
		if depth > 0 {
			opts = append(opts, dfs.WithMaxDepth(depth))
		}
		_, err = dfs.DFS(g, start, opts...)
	} else {
		opts := []bfs.Option{
			bfs.WithOnDiscover(func(from, to string, _ int) error {
				// reached means visited; the hop is shown once marked
				visited = append(visited, to)
				if from != "" {
					hop(from, to)
				}
				return nil
			}),
			bfs.WithOnVisit(func(id string, _ int) error {
				visit(id)
				return nil
			}),
		}
		if depth > 0 {
			opts = append(opts, bfs.WithMaxDepth(depth))
		}
		_, err = bfs.BFS(g, start, opts...)
	}
	if err != nil {
		return step.Outcome{}, fmt.Errorf("runner: %s from %q: %w", r.req.Op, start, err)
	}

	r.b.Show(step.Cleared().WithVisited(visited), 0, "%s: %s", r.req.Op, strings.Join(order, " "))

	return step.Outcome{Order: order}, nil
}
