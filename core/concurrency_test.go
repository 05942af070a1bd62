// Package core_test verifies thread-safety of core.Undirected under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tinygraph/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls keep the table symmetric.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewUndirected()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num+1, g.NodeCount())
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadWrite mixes writers with readers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewUndirected()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(fmt.Sprintf("A%d", id%10), fmt.Sprintf("B%d", id), 1)
		}(i)
		go func(id int) {
			defer wg.Done()
			g.AddNode(fmt.Sprintf("C%d", id))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.Nodes()
			_ = g.Table()
		}()
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}
