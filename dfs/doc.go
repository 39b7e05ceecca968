// Package dfs implements single-source depth-first search on a
// structure.Graph.
//
// What:
//
//   - DFS(g, startID, opts...): explores as far as possible along each
//     branch before backtracking.
//   - A vertex is marked visited the moment it is discovered, before any of
//     its neighbors are considered, so every reachable vertex is visited
//     exactly once and the walk terminates on any finite graph.
//   - Neighbors come from adjacency derived once per run from the edge list,
//     so the walk descends in edge declaration order.
//   - Descent uses an explicit frame stack instead of the call stack, which
//     keeps deep graphs from growing goroutine stacks while preserving the
//     recursive visiting order.
//
// Hooks:
//
//   - WithOnVisit(fn)   pre-order, on discovery
//   - WithOnEdge(fn)    tree edge from→to, just before descending
//
// Any hook error aborts the walk and is returned wrapped.
//
// Limits:
//
//   - WithMaxDepth(limit)   stops descent beyond the given depth (>=0).
//     A vertex pruned on a deep branch may still be reached later through
//     a shallower one.
//   - WithContext(ctx)      cancellation, checked once per stack step.
//
// Complexity:
//
//   - Time:   O(V + E) plus the overhead of hooks.
//   - Memory: O(V) for the frame stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by a hook.
package dfs
