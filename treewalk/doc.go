// Package treewalk provides the binary-tree walks used by the step runner:
// the three depth-first traversals as iterators, plus the root-to-target
// descent paths followed by search-tree lookup and insertion.
//
// Traversals keep their pending ancestors on an explicit slice rather than
// the call stack, so a consumer may stop early (break out of the range
// loop) without any goroutine or deferred state left behind.
//
// Each traversal yields every node exactly once; for a valid search tree
// InOrder yields values in ascending order.
package treewalk
