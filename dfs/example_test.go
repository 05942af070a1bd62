package dfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tinygraph/dfs"
)

// ExampleAdjacencyList_DFS walks a graph with a cycle and a self-loop.
// Graph structure:
//
//	0───1
//	 \  │
//	  \ │
//	    2───3↺
//
// Starting at 0, expected pre-order: [0 1 2 3]
func ExampleAdjacencyList_DFS() {
	g, _ := dfs.NewAdjacencyList(4)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 3}} {
		_ = g.AddEdge(e[0], e[1])
	}

	order, err := g.DFS(0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [0 1 2 3]
}

// ExampleAdjacencyList_Components lists each connected component.
func ExampleAdjacencyList_Components() {
	g, _ := dfs.NewAdjacencyList(5)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(3, 4)

	fmt.Println(g.Components())

	// Output:
	// [[0 1 2] [3 4]]
}

// ExampleRangeError shows the error returned for an out-of-range vertex.
func ExampleRangeError() {
	g, _ := dfs.NewAdjacencyList(3)
	err := g.AddEdge(0, 5)

	var rerr *dfs.RangeError
	if errors.As(err, &rerr) {
		fmt.Println(rerr.Index, rerr.Size, errors.Is(err, dfs.ErrVertexOutOfRange))
	}
	fmt.Println(err)

	// Output:
	// 5 3 true
	// dfs: AddEdge: vertex 5 out of range [0, 3)
}
