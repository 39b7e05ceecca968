package treewalk

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/stepviz/structure"
)

// Order names one of the depth-first traversal orders.
type Order string

const (
	InOrderName   Order = "inorder"   // left, self, right
	PreOrderName  Order = "preorder"  // self, left, right
	PostOrderName Order = "postorder" // left, right, self
)

// Walk returns the traversal for order. It panics on an unknown order.
func Walk(order Order, root *structure.TreeNode) iter.Seq[*structure.TreeNode] {
	switch order {
	case InOrderName:
		return InOrder(root)
	case PreOrderName:
		return PreOrder(root)
	case PostOrderName:
		return PostOrder(root)
	default:
		panic(fmt.Sprintf("treewalk: unknown order %q", order))
	}
}

// InOrder yields left subtree, node, right subtree.
//
// The stack holds the chain of ancestors whose left side is still being
// visited; popping one means its left side is done, so it is yielded and
// its right child's left spine is pushed next.
func InOrder(root *structure.TreeNode) iter.Seq[*structure.TreeNode] {
	return func(yield func(*structure.TreeNode) bool) {
		var stack []*structure.TreeNode
		pushLeft := func(n *structure.TreeNode) {
			for ; n != nil; n = n.Left {
				stack = append(stack, n)
			}
		}
		pushLeft(root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			pushLeft(n.Right)
		}
	}
}

// PreOrder yields node, left subtree, right subtree.
func PreOrder(root *structure.TreeNode) iter.Seq[*structure.TreeNode] {
	return func(yield func(*structure.TreeNode) bool) {
		if root == nil {
			return
		}
		stack := []*structure.TreeNode{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			// right first so left is popped first
			if n.Right != nil {
				stack = append(stack, n.Right)
			}
			if n.Left != nil {
				stack = append(stack, n.Left)
			}
		}
	}
}

// PostOrder yields left subtree, right subtree, node.
//
// A node on top of the stack is emitted once its right child is absent or
// was the last node emitted; otherwise the right child's left spine is
// pushed first.
func PostOrder(root *structure.TreeNode) iter.Seq[*structure.TreeNode] {
	return func(yield func(*structure.TreeNode) bool) {
		var (
			stack []*structure.TreeNode
			last  *structure.TreeNode
		)
		pushLeft := func(n *structure.TreeNode) {
			for ; n != nil; n = n.Left {
				stack = append(stack, n)
			}
		}
		pushLeft(root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			if n.Right != nil && n.Right != last {
				pushLeft(n.Right)
				continue
			}
			stack = stack[:len(stack)-1]
			last = n
			if !yield(n) {
				return
			}
		}
	}
}

// Values drains seq into a slice of node values.
func Values(seq iter.Seq[*structure.TreeNode]) []int {
	var out []int
	for n := range seq {
		out = append(out, n.Value)
	}

	return out
}
