package dfs

import (
	"fmt"

	"github.com/katalvlaran/stepviz/structure"
)

// frame is one level of the explicit descent stack: the vertex being
// explored and the position of the next neighbor to consider.
type frame struct {
	id    string
	depth int
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj  map[string][]string // declared-order adjacency, built once per run
	opts DFSOptions          // traversal options
	res  *DFSResult          // result collector
}

// DFS performs depth-first search on graph g from startID.
// Returns the DFSResult, or the partial result and an error if aborted by
// context or hook.
func DFS(g *structure.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	n := g.NodeCount()
	res := &DFSResult{
		Preorder: make([]string, 0, n),
		Order:    make([]string, 0, n),
		Depth:    make(map[string]int, n),
		Parent:   make(map[string]string, n),
		Visited:  make(map[string]bool, n),
	}

	walker := &dfsWalker{adj: g.Adjacency(), opts: dopts, res: res}

	// 4. Traverse the start's component
	if err := walker.traverse(startID); err != nil {
		return res, err
	}

	return res, nil
}

// discover marks id visited at depth and runs the pre-order hook.
func (w *dfsWalker) discover(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	return nil
}

// traverse explores everything reachable from root. The explicit frame
// stack reproduces recursive order exactly: a vertex's neighbors are
// considered in declared order, and each is checked for visitation only
// when its turn comes, after earlier siblings' subtrees are finished.
func (w *dfsWalker) traverse(root string) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		nbs := w.adj[top.id]

		// 2. All neighbors explored: post-order and pop
		if top.next == len(nbs) {
			w.res.Order = append(w.res.Order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}

		nid := nbs[top.next]
		top.next++

		// 3. Self-loops and visited vertices never lead anywhere new
		if nid == top.id || w.res.Visited[nid] {
			continue
		}

		// 4. Descend within the depth limit
		depth := top.depth + 1
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}
		from := top.id
		if w.opts.OnEdge != nil {
			if err := w.opts.OnEdge(from, nid); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnEdge hook for %q->%q: %w", from, nid, err)
			}
		}
		w.res.Parent[nid] = from
		if err := w.discover(nid, depth); err != nil {
			return err
		}
		stack = append(stack, frame{id: nid, depth: depth})
	}

	return nil
}
