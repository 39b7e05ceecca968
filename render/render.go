// Package render draws structures and step sequences as terminal text for
// the stepviz command.
package render

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

// Renderer draws structures with the highlighted element emphasised.
type Renderer struct {
	target  *color.Color
	visited *color.Color
	edge    *color.Color
	muted   *color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithoutColor renders plain text.
func WithoutColor() Option {
	return func(r *Renderer) {
		for _, c := range []*color.Color{r.target, r.visited, r.edge, r.muted} {
			c.DisableColor()
		}
	}
}

// New returns a Renderer; colour follows the terminal unless disabled.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		target:  color.New(color.FgHiYellow, color.Bold),
		visited: color.New(color.FgHiCyan),
		edge:    color.New(color.FgHiMagenta),
		muted:   color.New(color.FgHiBlack),
	}
	for _, fn := range opts {
		fn(r)
	}

	return r
}

// Structure draws s under highlight h. Highlighted elements are wrapped in
// angle brackets so they stand out without colour as well.
func (r *Renderer) Structure(s structure.Structure, h step.Highlight) string {
	switch v := s.(type) {
	case *structure.Array:
		return r.cells(v.Values(), h)
	case *structure.Stack:
		return r.cells(v.Values(), h) + r.muted.Sprint(" <- top")
	case *structure.Queue:
		return r.muted.Sprint("front -> ") + r.cells(v.Values(), h) + r.muted.Sprint(" <- rear")
	case *structure.Text:
		runes := v.Runes()
		parts := make([]string, len(runes))
		for i, c := range runes {
			parts[i] = r.mark(string(c), h.Target == step.Index(i))
		}
		return `"` + strings.Join(parts, "") + `"`
	case *structure.LinkedList:
		return r.list(v, h)
	case *structure.Matrix:
		return r.matrix(v, h)
	case *structure.Tree:
		return r.tree(v, h)
	case *structure.Graph:
		return r.graph(v, h)
	case *structure.HashTable:
		return r.hashTable(v, h)
	default:
		return s.String()
	}
}

func (r *Renderer) mark(text string, on bool) string {
	if on {
		return r.target.Sprint("<" + text + ">")
	}

	return text
}

func (r *Renderer) cells(values []int, h step.Highlight) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = r.mark(strconv.Itoa(v), h.Target == step.Index(i))
	}

	return "[ " + strings.Join(parts, " | ") + " ]"
}

func (r *Renderer) list(l *structure.LinkedList, h step.Highlight) string {
	var b strings.Builder
	for _, n := range l.Nodes() {
		b.WriteString(r.mark(strconv.Itoa(n.Value), h.Target == step.Node(strconv.Itoa(n.ID))))
		b.WriteString(" -> ")
	}
	b.WriteString(r.muted.Sprint("null"))

	return b.String()
}

func (r *Renderer) matrix(m *structure.Matrix, h step.Highlight) string {
	rows := make([]string, m.Rows())
	for row := range m.Rows() {
		cells := make([]string, m.Cols())
		for col := range m.Cols() {
			cells[col] = r.mark(strconv.Itoa(m.At(row, col)), h.Target == step.Cell(row, col))
		}
		rows[row] = "| " + strings.Join(cells, " ") + " |"
	}

	return strings.Join(rows, "\n")
}

// tree draws the tree on its side: right subtree above, left below.
func (r *Renderer) tree(t *structure.Tree, h step.Highlight) string {
	if t.Root == nil {
		return r.muted.Sprint("(empty)")
	}
	var b strings.Builder
	var walk func(n *structure.TreeNode, depth int)
	walk = func(n *structure.TreeNode, depth int) {
		if n == nil {
			return
		}
		walk(n.Right, depth+1)
		b.WriteString(strings.Repeat("    ", depth))
		b.WriteString(r.node(n.ID(), h))
		b.WriteByte('\n')
		walk(n.Left, depth+1)
	}
	walk(t.Root, 0)

	return strings.TrimSuffix(b.String(), "\n")
}

// node draws a tree or graph node: target first, then visited.
func (r *Renderer) node(id string, h step.Highlight) string {
	switch {
	case h.Target == step.Node(id):
		return r.mark(id, true)
	case slices.Contains(h.Visited, id):
		return r.visited.Sprint("(" + id + ")")
	default:
		return id
	}
}

func (r *Renderer) graph(g *structure.Graph, h step.Highlight) string {
	ids := g.NodeIDs()
	nodes := make([]string, len(ids))
	for i, id := range ids {
		nodes[i] = r.node(id, h)
	}

	edges := make([]string, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		text := e.From + "-" + e.To
		if h.Edge != nil && (*h.Edge == step.Edge{From: e.From, To: e.To} || *h.Edge == step.Edge{From: e.To, To: e.From}) {
			text = r.edge.Sprint("=" + text + "=")
		}
		edges = append(edges, text)
	}

	return "nodes: " + strings.Join(nodes, " ") + "\nedges: " + strings.Join(edges, " ")
}

func (r *Renderer) hashTable(t *structure.HashTable, h step.Highlight) string {
	lines := make([]string, structure.BucketCount)
	for i := range structure.BucketCount {
		entries := t.Bucket(i)
		parts := make([]string, len(entries))
		for j, e := range entries {
			parts[j] = e.Key + "=" + e.Value
		}
		label := fmt.Sprintf("%d:", i)
		if h.Target == step.Bucket(i) {
			label = r.target.Sprint(">" + label)
		} else {
			label = " " + label
		}
		lines[i] = strings.TrimRight(label+" "+strings.Join(parts, " -> "), " ")
	}

	return strings.Join(lines, "\n")
}
