// Package dfs implements depth-first traversal over a fixed-size,
// index-addressed, undirected adjacency list.
//
// What:
//
//   - AdjacencyList: n vertices numbered 0..n-1; AddEdge appends both
//     directions, self-loops included.
//   - DFS / Walk: pre-order depth-first traversal from a start vertex,
//     exploring neighbors in the order their edges were added.
//   - Components: repeated walks from every unvisited vertex, one slice per
//     connected component.
//
// The walk uses an explicit stack of (vertex, next-neighbor) frames, so deep
// chains never exhaust the goroutine stack. Visiting order is identical to the
// classic recursive formulation.
//
// Key Types:
//
//   - Option, Options: functional options (WithOnVisit, WithMaxDepth)
//   - Result: Order (pre-order), Parent and Depth per vertex
//   - RangeError: offending index and the valid range [0, n)
//
// Complexity:
//
//   - AddEdge:    O(1) amortized
//   - DFS/Walk:   Time O(V+E), Memory O(V)
//   - Components: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          receiver is nil
//   - ErrNegativeSize      NewAdjacencyList(n) with n < 0
//   - ErrVertexOutOfRange  wrapped by *RangeError from AddEdge, DFS, Walk, Neighbors
//   - hook errors          propagated from OnVisit
//
// Validation always happens before mutation, so a failed AddEdge leaves the
// list unchanged.
package dfs
