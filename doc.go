// Package tinygraph is a small in-memory toolkit for label-keyed weighted
// graphs and index-addressed depth-first traversal.
//
// Under the hood, everything is organized under three subpackages:
//
//	core/       — Graph capability interface, adjacency Table, embeddable Base,
//	              and the weighted-undirected variant (Undirected)
//	dfs/        — fixed-size AdjacencyList with pre-order DFS, Walk and Components
//	converters/ — export to gonum/graph values (simple.WeightedUndirectedGraph,
//	              simple.UndirectedGraph)
//
// Quick ASCII example:
//
//	    a───b
//	     \ /
//	      c
//
//	core:  AddEdge("a","b",5); AddEdge("b","c",10); AddEdge("c","a",7)
//	       Edges() → 3 logical edges from 6 stored entries.
//
//	go get github.com/katalvlaran/tinygraph
package tinygraph
