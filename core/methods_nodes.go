// File: methods_nodes.go
// Role: Node lifecycle & queries shared by every variant through Base.
//
// Determinism:
//   - SortedNodes() returns labels sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"log/slog"
	"sort"
)

// Mutate runs fn with exclusive, mutable access to the adjacency table and
// returns fn's error. Variants implement AddEdge on top of it.
//
// fn must not call other methods of b; the write lock is held.
//
// Complexity: O(1) + cost(fn)
func (b *Base) Mutate(fn func(t Table) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.table == nil { // zero-value Base
		b.table = make(Table)
	}

	return fn(b.table)
}

// Logger returns the diagnostic logger, falling back to slog.Default()
// for a Base that was never initialized.
func (b *Base) Logger() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}

	return b.logger
}

// Table returns a deep copy of the adjacency table.
// Mutating the copy never affects the graph.
//
// Complexity: O(V + E)
func (b *Base) Table() Table {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.table.clone()
}

// AddNode inserts label with an empty neighbor list if it is absent.
// It returns false, and changes nothing, when label already exists.
//
// Complexity: O(1)
func (b *Base) AddNode(label string) bool {
	var inserted bool
	_ = b.Mutate(func(t Table) error {
		inserted = t.Ensure(label)
		return nil
	})

	return inserted
}

// Contains reports whether label is a node of the graph.
//
// Complexity: O(1)
func (b *Base) Contains(label string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.table[label]

	return ok
}

// Nodes returns the set of node labels. The map is a fresh copy.
//
// Complexity: O(V)
func (b *Base) Nodes() map[string]struct{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]struct{}, len(b.table))
	for label := range b.table {
		out[label] = struct{}{}
	}

	return out
}

// SortedNodes returns node labels in ascending order.
//
// Complexity: O(V·log V)
func (b *Base) SortedNodes() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return sortedLabels(b.table)
}

// NodeCount returns the number of nodes.
//
// Complexity: O(1)
func (b *Base) NodeCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.table)
}

// Neighbors returns a copy of label's neighbor list in insertion order.
//
// Errors:
//   - ErrNodeNotFound if label is not in the graph.
//
// Complexity: O(d)
func (b *Base) Neighbors(label string) ([]Neighbor, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	nbs, ok := b.table[label]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Neighbor, len(nbs))
	copy(out, nbs)

	return out, nil
}

// sortedLabels returns the keys of t sorted ascending. Caller holds a lock.
func sortedLabels(t Table) []string {
	labels := make([]string, 0, len(t))
	for label := range t {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}
