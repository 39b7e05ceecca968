package structure

import (
	"strconv"
	"strings"
)

// TreeNode is one node of a binary tree. Values are unique within a
// search tree, so the value doubles as the node's highlight identity.
type TreeNode struct {
	Value       int
	Left, Right *TreeNode
}

// ID returns the highlight identity of n.
func (n *TreeNode) ID() string { return strconv.Itoa(n.Value) }

// Tree is a binary tree. Search and Insert assume binary-search-tree
// ordering; traversals work on any shape.
type Tree struct {
	Root *TreeNode
}

// NewTree inserts values in order into an empty search tree.
func NewTree(values ...int) *Tree {
	t := &Tree{}
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Kind implements Structure.
func (t *Tree) Kind() Kind { return KindTree }

// Insert attaches v as a new leaf following search-tree ordering.
// It reports false, leaving the tree unchanged, when v is already present.
func (t *Tree) Insert(v int) bool {
	link := &t.Root
	for *link != nil {
		switch n := *link; {
		case v < n.Value:
			link = &n.Left
		case v > n.Value:
			link = &n.Right
		default:
			return false
		}
	}
	*link = &TreeNode{Value: v}

	return true
}

// Contains reports whether v is reachable by search-tree descent.
func (t *Tree) Contains(v int) bool {
	for n := t.Root; n != nil; {
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return true
		}
	}

	return false
}

// Count returns the number of nodes.
func (t *Tree) Count() int { return count(t.Root) }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int { return height(t.Root) }

func count(n *TreeNode) int {
	if n == nil {
		return 0
	}

	return 1 + count(n.Left) + count(n.Right)
}

func height(n *TreeNode) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.Left), height(n.Right))
}

func cloneNode(n *TreeNode) *TreeNode {
	if n == nil {
		return nil
	}

	return &TreeNode{Value: n.Value, Left: cloneNode(n.Left), Right: cloneNode(n.Right)}
}

func equalNode(a, b *TreeNode) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Value == b.Value && equalNode(a.Left, b.Left) && equalNode(a.Right, b.Right)
}

// Clone implements Structure.
func (t *Tree) Clone() Structure { return &Tree{Root: cloneNode(t.Root)} }

// Equal implements Structure. Shape takes part in the comparison.
func (t *Tree) Equal(other Structure) bool {
	o, ok := other.(*Tree)

	return ok && equalNode(t.Root, o.Root)
}

// String renders the tree as value(left,right), with "-" for an absent child.
func (t *Tree) String() string {
	var b strings.Builder
	writeNode(&b, t.Root)

	return b.String()
}

func writeNode(b *strings.Builder, n *TreeNode) {
	if n == nil {
		b.WriteString("-")
		return
	}
	b.WriteString(strconv.Itoa(n.Value))
	if n.Left == nil && n.Right == nil {
		return
	}
	b.WriteByte('(')
	writeNode(b, n.Left)
	b.WriteByte(',')
	writeNode(b, n.Right)
	b.WriteByte(')')
}
