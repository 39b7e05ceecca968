package step

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/stepviz/structure"
)

// TargetKind tells a renderer what a Target points at.
type TargetKind uint8

const (
	TargetNone   TargetKind = iota // nothing highlighted
	TargetIndex                    // position in an array, string, list, stack or queue
	TargetCell                     // matrix cell
	TargetNode                     // tree value, graph node id or list node id
	TargetBucket                   // hash-table bucket
)

func (k TargetKind) String() string {
	switch k {
	case TargetIndex:
		return "index"
	case TargetCell:
		return "cell"
	case TargetNode:
		return "node"
	case TargetBucket:
		return "bucket"
	default:
		return "none"
	}
}

// Target is the single highlighted element of a Step.
type Target struct {
	Kind  TargetKind
	Index int    // TargetIndex, TargetBucket
	Row   int    // TargetCell
	Col   int    // TargetCell
	Node  string // TargetNode
}

// None is the cleared target.
func None() Target { return Target{} }

// Index targets position i.
func Index(i int) Target { return Target{Kind: TargetIndex, Index: i} }

// Cell targets matrix cell (r, c).
func Cell(r, c int) Target { return Target{Kind: TargetCell, Row: r, Col: c} }

// Node targets the node with the given identity.
func Node(id string) Target { return Target{Kind: TargetNode, Node: id} }

// Bucket targets hash bucket i.
func Bucket(i int) Target { return Target{Kind: TargetBucket, Index: i} }

// IsNone reports whether nothing is targeted.
func (t Target) IsNone() bool { return t.Kind == TargetNone }

func (t Target) String() string {
	switch t.Kind {
	case TargetIndex, TargetBucket:
		return fmt.Sprintf("%s %d", t.Kind, t.Index)
	case TargetCell:
		return fmt.Sprintf("cell (%d,%d)", t.Row, t.Col)
	case TargetNode:
		return "node " + t.Node
	default:
		return "none"
	}
}

// Edge is a directed "current edge" pair.
type Edge struct {
	From, To string
}

func (e Edge) String() string { return e.From + "->" + e.To }

// Highlight is everything a renderer should emphasise for one Step.
type Highlight struct {
	Target  Target
	Visited []string
	Edge    *Edge
}

// On highlights t alone.
func On(t Target) Highlight { return Highlight{Target: t} }

// Cleared is the empty highlight.
func Cleared() Highlight { return Highlight{} }

// WithVisited returns a copy of h carrying a snapshot of visited.
func (h Highlight) WithVisited(visited []string) Highlight {
	h.Visited = slices.Clone(visited)

	return h
}

// WithEdge returns a copy of h with the current edge from→to.
func (h Highlight) WithEdge(from, to string) Highlight {
	h.Edge = &Edge{From: from, To: to}

	return h
}

// IsCleared reports whether neither a target nor an edge is highlighted.
func (h Highlight) IsCleared() bool { return h.Target.IsNone() && h.Edge == nil }

// Step is one unit of observable state.
type Step struct {
	Highlight Highlight
	Mutation  Mutation // nil when the step only highlights
	Caption   string
	Delay     time.Duration
}

// Mutates reports whether the step carries a Mutation.
func (s Step) Mutates() bool { return s.Mutation != nil }

// Outcome summarises what a finished Sequence found or produced.
type Outcome struct {
	// Found is set by search-like operations that ended on a match.
	Found bool
	// Target is the matched element when Found.
	Target Target
	// Value carries a looked-up or removed value rendered as text.
	Value string
	// Order lists node identities in traversal order.
	Order []string
}

// Mutation is a change applied to a structure at a Step. Apply panics when
// given a structure of the wrong kind or input the Validation Layer should
// have rejected.
type Mutation interface {
	Apply(target structure.Structure)
	String() string
}
