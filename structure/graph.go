package structure

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates a node was declared with an empty id.
	ErrEmptyNodeID = errors.New("structure: graph node id is empty")

	// ErrDuplicateNode indicates a node id was declared twice.
	ErrDuplicateNode = errors.New("structure: graph node already declared")

	// ErrNodeNotFound indicates an edge or query referenced an undeclared node.
	ErrNodeNotFound = errors.New("structure: graph node not found")
)

// GraphNode is a named vertex. X and Y are layout coordinates used only by
// renderers.
type GraphNode struct {
	ID   string
	X, Y int
}

// Edge is an undirected connection between two declared nodes. From/To only
// record declaration order.
type Edge struct {
	From, To string
}

// Graph is an undirected graph that preserves node and edge declaration
// order. Adjacency is derived from the edge list on demand.
type Graph struct {
	nodes []GraphNode
	index map[string]int
	edges []Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Kind implements Structure.
func (g *Graph) Kind() Kind { return KindGraph }

// AddNode declares a node at layout position (x, y).
func (g *Graph) AddNode(id string, x, y int) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.index[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, GraphNode{ID: id, X: x, Y: y})

	return nil
}

// AddEdge declares the undirected edge {from, to}. Both nodes must exist.
func (g *Graph) AddEdge(from, to string) error {
	for _, id := range []string{from, to} {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	g.edges = append(g.edges, Edge{From: from, To: to})

	return nil
}

// HasNode reports whether id is declared.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Node returns the declared node with the given id.
func (g *Graph) Node(id string) (GraphNode, bool) {
	i, ok := g.index[id]
	if !ok {
		return GraphNode{}, false
	}

	return g.nodes[i], true
}

// Nodes returns the nodes in declaration order.
func (g *Graph) Nodes() []GraphNode { return slices.Clone(g.nodes) }

// NodeIDs returns the node ids in declaration order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// Edges returns the edges in declaration order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of declared nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// First returns the first declared node id, the default traversal start.
func (g *Graph) First() (string, bool) {
	if len(g.nodes) == 0 {
		return "", false
	}

	return g.nodes[0].ID, true
}

// Adjacency scans the edge list once and returns, for every node, its
// neighbours in the order the edges mentioning it were declared. Adjacency
// is symmetric: {A,B} lists B under A and A under B. A self-loop lists the
// node once.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for _, n := range g.nodes {
		adj[n.ID] = nil
	}
	for _, e := range g.edges {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}

// Neighbors returns the declared-order neighbours of id.
func (g *Graph) Neighbors(id string) []string {
	if !g.HasNode(id) {
		panic(fmt.Sprintf("structure: graph node %q not declared", id))
	}

	return g.Adjacency()[id]
}

// Clone implements Structure.
func (g *Graph) Clone() Structure {
	c := &Graph{
		nodes: slices.Clone(g.nodes),
		index: make(map[string]int, len(g.index)),
		edges: slices.Clone(g.edges),
	}
	for id, i := range g.index {
		c.index[id] = i
	}

	return c
}

// Equal implements Structure.
func (g *Graph) Equal(other Structure) bool {
	o, ok := other.(*Graph)

	return ok && slices.Equal(g.nodes, o.nodes) && slices.Equal(g.edges, o.edges)
}

func (g *Graph) String() string {
	parts := make([]string, len(g.edges))
	for i, e := range g.edges {
		parts[i] = e.From + "-" + e.To
	}

	return strings.Join(g.NodeIDs(), " ") + " | " + strings.Join(parts, " ")
}
