package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/tinygraph/core"
	"github.com/katalvlaran/tinygraph/dfs"
)

var (
	// ErrGraphNil indicates a nil source graph.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrMultiEdge indicates two edges with different weights between the same
	// pair, which a simple graph cannot hold.
	ErrMultiEdge = errors.New("converters: parallel edges not representable")
)

// ToGonum copies g into a weighted undirected gonum graph.
// Self weight is 0 and absent weight is +Inf.
//
// Returns the gonum graph and the label → node ID mapping.
func ToGonum(g core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	// 1. Deterministic IDs: ascending label order.
	labels := make([]string, 0)
	for label := range g.Nodes() {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ids := make(map[string]int64, len(labels))
	for i, label := range labels {
		ids[label] = int64(i)
		out.AddNode(simple.Node(i))
	}

	// 2. Edges: one per pair, else reject.
	var e core.Edge
	for _, e = range g.Edges() {
		u, v := ids[e.From], ids[e.To]
		if out.HasEdgeBetween(u, v) {
			return nil, nil, fmt.Errorf("%w: %q-%q", ErrMultiEdge, e.From, e.To)
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(u), simple.Node(v), float64(e.Weight)))
	}

	return out, ids, nil
}

// AdjacencyListToGonum copies a into an unweighted undirected gonum graph.
// Self-loops are skipped and repeated entries collapse into one edge.
func AdjacencyListToGonum(a *dfs.AdjacencyList) (*simple.UndirectedGraph, error) {
	if a == nil {
		return nil, ErrGraphNil
	}

	out := simple.NewUndirectedGraph()
	n := a.Size()
	for v := 0; v < n; v++ {
		out.AddNode(simple.Node(v))
	}
	for v := 0; v < n; v++ {
		nbs, err := a.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, u := range nbs {
			if u == v || out.HasEdgeBetween(int64(v), int64(u)) {
				continue
			}
			out.SetEdge(simple.Edge{F: simple.Node(v), T: simple.Node(u)})
		}
	}

	return out, nil
}
