package treewalk

import "github.com/katalvlaran/stepviz/structure"

// SearchPath returns the nodes compared while looking for v by search-tree
// descent: left when v is smaller, right when larger, stopping on equality
// or a missing child. found reports whether the last node holds v.
// The path never exceeds the tree height.
func SearchPath(root *structure.TreeNode, v int) (path []*structure.TreeNode, found bool) {
	for n := root; n != nil; {
		path = append(path, n)
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return path, true
		}
	}

	return path, false
}

// InsertPath returns the nodes compared before v would be attached as a
// leaf, and whether v is already present (in which case the last node in
// path holds it). The new leaf's parent is the last node in path, or the
// tree is empty when path is empty.
func InsertPath(root *structure.TreeNode, v int) (path []*structure.TreeNode, exists bool) {
	return SearchPath(root, v)
}
