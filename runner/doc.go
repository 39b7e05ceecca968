// Package runner turns a (structure, operation, parameters) request into
// the ordered, finite step.Sequence a player renders.
//
// Run is a pure function of its inputs: it works on a private clone of the
// given structure, records every highlight and mutation as a step.Step
// with its delay, and returns the sequence together with the resulting
// state (Sequence.Final) and a summary Outcome. The caller's structure is
// never modified; committing mutations is the player's business.
//
// Supported operations per kind:
//
//	array      search insert delete update
//	string     search insert delete update
//	matrix     search update
//	linkedlist insert-head insert-tail delete
//	stack      push pop
//	queue      enqueue dequeue
//	tree       search insert inorder preorder postorder
//	graph      dfs bfs
//	hashtable  insert search delete
//
// Search-like operations never fail on a miss: a found sequence ends on the
// matching element, a miss ends with a cleared highlight. A request whose
// kind does not match the structure, or whose operation the kind does not
// support, is a caller contract breach and returns an error with no steps.
// Parameters are assumed validated; out-of-domain values panic in the
// structure package.
package runner
