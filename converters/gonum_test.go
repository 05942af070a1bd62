package converters_test

import (
	"io"
	"log/slog"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/tinygraph/converters"
	"github.com/katalvlaran/tinygraph/core"
	"github.com/katalvlaran/tinygraph/dfs"
)

func TestToGonum_Nil(t *testing.T) {
	wg, ids, err := converters.ToGonum(nil)
	assert.Nil(t, wg)
	assert.Nil(t, ids)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
}

func TestToGonum_Triangle(t *testing.T) {
	g := core.NewUndirected()
	require.NoError(t, g.AddEdge("a", "b", 5))
	require.NoError(t, g.AddEdge("b", "c", 10))
	require.NoError(t, g.AddEdge("c", "a", -7))
	g.AddNode("z") // isolated

	wg, ids, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 0, "b": 1, "c": 2, "z": 3}, ids)
	assert.Equal(t, 4, wg.Nodes().Len())
	assert.Equal(t, 3, wg.Edges().Len())

	w, ok := wg.Weight(ids["a"], ids["b"])
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
	w, ok = wg.Weight(ids["a"], ids["c"])
	require.True(t, ok)
	assert.Equal(t, -7.0, w)

	_, ok = wg.Weight(ids["a"], ids["z"])
	assert.False(t, ok)
	w, _ = wg.Weight(ids["a"], ids["z"])
	assert.True(t, math.IsInf(w, 1))
}

func TestToGonum_DuplicateSameWeightCollapses(t *testing.T) {
	g := core.NewUndirected()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "a", 1))

	wg, _, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 1, wg.Edges().Len())
}

func TestToGonum_ParallelWeightsRejected(t *testing.T) {
	g := core.NewUndirected(core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "b", 2))

	_, _, err := converters.ToGonum(g)
	assert.ErrorIs(t, err, converters.ErrMultiEdge)
}

func TestAdjacencyListToGonum_Nil(t *testing.T) {
	ug, err := converters.AdjacencyListToGonum(nil)
	assert.Nil(t, ug)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
}

func TestAdjacencyListToGonum_DropsLoopsAndDuplicates(t *testing.T) {
	a, err := dfs.NewAdjacencyList(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 0}, {2, 2}, {1, 2}} {
		require.NoError(t, a.AddEdge(e[0], e[1]))
	}

	ug, err := converters.AdjacencyListToGonum(a)
	require.NoError(t, err)
	assert.Equal(t, 4, ug.Nodes().Len())
	assert.Equal(t, 2, ug.Edges().Len())
	assert.True(t, ug.HasEdgeBetween(0, 1))
	assert.True(t, ug.HasEdgeBetween(2, 1))
	assert.False(t, ug.HasEdgeBetween(2, 2))
}

// TestDFS_ReachabilityMatchesGonum checks that dfs.DFS reaches exactly the
// vertices gonum's DepthFirst walker reaches.
func TestDFS_ReachabilityMatchesGonum(t *testing.T) {
	a, err := dfs.NewAdjacencyList(7)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {5, 5}, {4, 6}} {
		require.NoError(t, a.AddEdge(e[0], e[1]))
	}
	ug, err := converters.AdjacencyListToGonum(a)
	require.NoError(t, err)

	for start := 0; start < a.Size(); start++ {
		order, err := a.DFS(start)
		require.NoError(t, err)
		sort.Ints(order)

		var reached []int
		w := traverse.DepthFirst{Visit: func(n graph.Node) { reached = append(reached, int(n.ID())) }}
		w.Walk(ug, simple.Node(start), nil)
		sort.Ints(reached)

		assert.Equal(t, reached, order, "start %d", start)
	}
}
