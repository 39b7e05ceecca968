package runner

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
	"github.com/katalvlaran/stepviz/treewalk"
)

func treeNode(v int) step.Target { return step.Node(strconv.Itoa(v)) }

func (r *run) tree() step.Outcome {
	t := r.b.Work().(*structure.Tree)
	v := r.p().Value
	switch r.req.Op {
	case OpSearch:
		path, found := treewalk.SearchPath(t.Root, v)
		r.probe(path, v)
		if !found {
			return r.miss("%d not found", v)
		}

		return step.Outcome{Found: true, Target: treeNode(v), Value: strconv.Itoa(v)}
	case OpInsert:
		path, exists := treewalk.InsertPath(t.Root, v)
		r.probe(path, v)
		if exists {
			// duplicate: ends on the existing node, nothing attached
			return step.Outcome{Found: true, Target: treeNode(v), Value: strconv.Itoa(v)}
		}
		r.b.Apply(step.On(treeNode(v)), step.TreeInsert{Value: v}, r.t.TreeProbe, "attach %d", v)
		r.b.Show(step.Cleared(), 0, "tree: %s", t)

		return step.Outcome{Target: treeNode(v), Value: strconv.Itoa(v)}
	default:
		order := make([]string, 0, t.Count())
		for n := range treewalk.Walk(treewalk.Order(r.req.Op), t.Root) {
			order = append(order, n.ID())
			r.b.Show(step.On(step.Node(n.ID())).WithVisited(order), r.t.Traverse, "visit %d", n.Value)
		}
		r.b.Show(step.Cleared().WithVisited(order), 0, "%s: %s", r.req.Op, strings.Join(order, " "))

		return step.Outcome{Order: order}
	}
}

// probe shows every node compared on a search-tree descent.
func (r *run) probe(path []*structure.TreeNode, v int) {
	for _, n := range path {
		switch {
		case v < n.Value:
			r.b.Show(step.On(step.Node(n.ID())), r.t.TreeProbe, "%d < %d, go left", v, n.Value)
		case v > n.Value:
			r.b.Show(step.On(step.Node(n.ID())), r.t.TreeProbe, "%d > %d, go right", v, n.Value)
		default:
			r.b.Show(step.On(step.Node(n.ID())), r.t.TreeProbe, "found %d", v)
		}
	}
}
