package bfs

import (
	"fmt"

	"github.com/katalvlaran/stepviz/structure"
)

// walker holds the state of one walk. frontier is the layer being
// visited; next collects the layer after it.
type walker struct {
	adj      map[string][]string
	opts     BFSOptions
	frontier []string
	next     []string
	res      *BFSResult
}

// BFS walks g breadth-first from startID, visiting one frontier layer at
// a time. Neighbors are taken in edge declaration order, so the visit
// order is the same as a FIFO queue walk. A hook error or a cancelled
// context stops the walk and is returned with the partial result.
func BFS(g *structure.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		adj:  g.Adjacency(),
		opts: o,
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if err := w.discover("", startID, 0); err != nil {
		return w.res, err
	}

	return w.res, w.walk()
}

func (w *walker) walk() error {
	for depth := 0; len(w.next) > 0; depth++ {
		w.frontier, w.next = w.next, nil
		w.res.Layers = append(w.res.Layers, w.frontier)

		for _, id := range w.frontier {
			if err := w.opts.Ctx.Err(); err != nil {
				return err
			}
			if err := w.visit(id, depth); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit records id and reaches out to its unmarked neighbors.
func (w *walker) visit(id string, depth int) error {
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit hook for %q: %w", id, err)
		}
	}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	for _, nbr := range w.adj[id] {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if err := w.discover(id, nbr, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks to as reached so no later layer enqueues it again.
func (w *walker) discover(from, to string, depth int) error {
	w.res.Depth[to] = depth
	if from != "" {
		w.res.Parent[to] = from
	}
	w.next = append(w.next, to)

	if w.opts.OnDiscover != nil {
		if err := w.opts.OnDiscover(from, to, depth); err != nil {
			return fmt.Errorf("bfs: OnDiscover hook for %q: %w", to, err)
		}
	}

	return nil
}
