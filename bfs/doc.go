// Package bfs provides breadth-first search over a structure.Graph.
//
// The walk visits one frontier layer at a time: every vertex d edges from
// the start is visited before any vertex d+1 edges away. A vertex is
// marked the moment it is first reached, so it joins exactly one layer
// and the walk ends on any finite graph.
//
// Adjacency is derived once per run from the graph's edge list, so
// neighbors are reached in the order their edges were declared:
//
//	A───B───C
//	│   │  /
//	D───E─┘
//
//	edges A-B, A-D, B-C, B-E, C-E, D-E
//	BFS(A): layers [A] [B D] [C E]
//
// Hooks:
//
//   - WithOnDiscover(fn)  fn(from, to, depth) when to is first reached;
//     from is "" for the start vertex.
//   - WithOnVisit(fn)     fn(id, depth) when id is taken off the frontier.
//
// Either hook may return an error to stop the walk; BFS then returns the
// partial result together with the wrapped error.
//
// Limits:
//
//   - WithMaxDepth(d)   reach no vertex more than d edges away (-1 = no limit).
//   - WithContext(ctx)  checked before every visit.
//
// Time O(V + E) plus the cost of hooks, memory O(V).
package bfs
