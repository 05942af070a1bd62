// File: methods_edges.go
// Role: Edge insertion for Undirected and deduplicated edge enumeration on Base.
//
// Determinism:
//   - Edges() scans labels ascending and neighbor lists in insertion order.
//
// Concurrency:
//   - AddEdge mutates under the write lock (via Mutate).
//   - Edges/EdgeCount read under the read lock.
package core

import (
	"fmt"
	"log/slog"
)

// AddEdge connects from and to with weight, creating missing endpoints.
//
// Steps:
//  1. Reject from == to: log a warning, return ErrLoopNotAllowed, touch nothing.
//  2. Ensure both endpoints exist.
//  3. Append (to, weight) to from's list and (from, weight) to to's list.
//
// A rejected call never creates a node. Repeating an edge appends another
// mirrored pair; Edges() collapses pairs with equal weight.
//
// Complexity: O(1) amortized.
func (g *Undirected) AddEdge(from, to string, weight int64) error {
	if from == to {
		g.Logger().Warn("core: self-loop rejected",
			slog.String("op", "AddEdge"),
			slog.String("label", from),
			slog.Int64("weight", weight),
		)

		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	return g.Mutate(func(t Table) error {
		t.Ensure(from)
		t.Ensure(to)
		t[from] = append(t[from], Neighbor{Label: to, Weight: weight})
		t[to] = append(t[to], Neighbor{Label: from, Weight: weight})

		return nil
	})
}

// edgeKey identifies an undirected edge: the unordered endpoint pair plus weight.
type edgeKey struct {
	lo, hi string
	weight int64
}

func newEdgeKey(a, b string, w int64) edgeKey {
	if b < a {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b, weight: w}
}

// Edges enumerates the adjacency table and reports each logical edge once.
// An entry and its mirror collapse to whichever direction the scan meets
// first. Parallel edges with different weights are distinct and both kept.
//
// Complexity: O(V·log V + E)
func (b *Base) Edges() []Edge {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seen := make(map[edgeKey]struct{})
	out := make([]Edge, 0)
	var nb Neighbor
	for _, from := range sortedLabels(b.table) {
		for _, nb = range b.table[from] {
			k := newEdgeKey(from, nb.Label, nb.Weight)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, Edge{From: from, To: nb.Label, Weight: nb.Weight})
		}
	}

	return out
}

// EdgeCount returns len(Edges()).
//
// Complexity: O(V·log V + E)
func (b *Base) EdgeCount() int {
	return len(b.Edges())
}
