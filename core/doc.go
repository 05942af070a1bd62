// Package core provides a small, label-keyed, weighted graph abstraction
// with a composable capability surface.
//
// The Graph G = (V,E) is stored as an adjacency table:
//
//	table[label] = []Neighbor{{Label: to, Weight: w}, ...}
//
// Every neighbor sequence keeps the order in which edges were added.
// Parallel edges added by independent AddEdge calls are kept in storage and
// collapsed only when Edges() enumerates the graph.
//
// Capability model:
//
//   - Graph is the capability interface: AddNode, AddEdge, Contains, Nodes,
//     Edges and a read-only Table snapshot.
//   - Base carries the adjacency table and implements every capability except
//     AddEdge. Mutate gives a variant locked, mutable access to the table.
//   - Undirected embeds Base and overrides AddEdge with mirrored storage.
//
// Invariants (Undirected):
//
//   - Symmetry: (u→v, w) is in u's list iff (v→u, w) is in v's list.
//   - Closure: every label found in a neighbor list is also a table key.
//   - Monotonic growth: nodes and edges are never removed.
//
// Core Methods:
//
//	AddNode(label string) bool                  // O(1)
//	AddEdge(from, to string, weight int64) error // O(1) amortized
//	Contains(label string) bool                 // O(1)
//	Nodes() map[string]struct{}                 // O(V)
//	SortedNodes() []string                      // O(V·log V)
//	Neighbors(label string) ([]Neighbor, error) // O(d)
//	Edges() []Edge                              // O(V·log V + E)
//	EdgeCount() int / NodeCount() int
//
// Determinism:
//
//	Edges() scans labels in ascending order and each neighbor list in
//	insertion order; the first direction seen for an undirected edge wins.
//
// Errors:
//
//	ErrLoopNotAllowed – AddEdge(v, v, w); the call is a no-op and a warning is logged.
//	ErrNodeNotFound   – Neighbors on a label that is not in the graph.
//
// Concurrency:
//
//	Base guards its table with a sync.RWMutex: mutations take the write lock,
//	queries take the read lock.
package core
