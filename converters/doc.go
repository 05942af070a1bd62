// Package converters exports tinygraph structures into gonum/graph values so
// that gonum's algorithm suite (topo, path, traverse, ...) can run on them.
//
//   - ToGonum: core.Graph → *simple.WeightedUndirectedGraph plus the
//     label → node ID mapping (IDs assigned 0..V-1 by ascending label).
//   - AdjacencyListToGonum: *dfs.AdjacencyList → *simple.UndirectedGraph with
//     vertex i ↔ simple.Node(i).
//
// gonum simple graphs hold at most one edge per pair and no self-loops, so
// parallel weighted edges are rejected with ErrMultiEdge, while duplicate and
// self-loop entries of an adjacency list are dropped.
package converters
